package repositories

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
)

// translateDBError folds unique-index violations into the domain conflict
// sentinel. Pre-checks in the usecases are a fast path; the index stays the
// source of truth when two writers race.
func translateDBError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrAlreadyExists
	}
	return err
}

// strPtr maps an optional string column: empty means absent.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
