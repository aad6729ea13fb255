package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/domain/repositories"
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
)

// SupplierUsecase handles supplier catalog logic
type SupplierUsecase struct {
	supplierRepo repositories.SupplierRepository
	uow          repositories.UnitOfWork
}

// NewSupplierUsecase creates a new supplier usecase
func NewSupplierUsecase(supplierRepo repositories.SupplierRepository, uow repositories.UnitOfWork) *SupplierUsecase {
	return &SupplierUsecase{supplierRepo: supplierRepo, uow: uow}
}

// Create creates a supplier; the name must be free
func (u *SupplierUsecase) Create(ctx context.Context, input *entities.CreateSupplierInput, lang string) (*entities.Supplier, error) {
	if _, err := u.supplierRepo.GetByName(ctx, input.Name); err == nil {
		return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySupplierNameTaken))
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	supplier := &entities.Supplier{
		Name:         input.Name,
		Translations: translationsFromInput(input.Translations),
	}
	if input.Address != "" {
		supplier.Address = null.StringFrom(input.Address)
	}
	if input.Phone != "" {
		supplier.Phone = null.StringFrom(input.Phone)
	}
	if input.Email != "" {
		supplier.Email = null.StringFrom(input.Email)
	}

	if err := u.supplierRepo.Create(ctx, supplier); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySupplierNameTaken))
		}
		return nil, domainerrors.InternalError(err)
	}
	return supplier, nil
}

// Get returns one supplier with all its translations
func (u *SupplierUsecase) Get(ctx context.Context, id uuid.UUID, lang string) (*entities.Supplier, error) {
	supplier, err := u.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeySupplierNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}
	return supplier, nil
}

// List returns all suppliers
func (u *SupplierUsecase) List(ctx context.Context) ([]*entities.Supplier, error) {
	suppliers, err := u.supplierRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return suppliers, nil
}

// Update applies the provided fields; a non-empty translation list replaces
// the whole set atomically
func (u *SupplierUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateSupplierInput, lang string) (*entities.Supplier, error) {
	supplier, err := u.Get(ctx, id, lang)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != supplier.Name {
		if _, err := u.supplierRepo.GetByName(ctx, *input.Name); err == nil {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySupplierNameTaken))
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(err)
		}
		supplier.Name = *input.Name
	}
	if input.Address != nil {
		supplier.Address = null.StringFrom(*input.Address)
	}
	if input.Phone != nil {
		supplier.Phone = null.StringFrom(*input.Phone)
	}
	if input.Email != nil {
		supplier.Email = null.StringFrom(*input.Email)
	}

	replaceTranslations := len(input.Translations) > 0
	if replaceTranslations {
		supplier.Translations = translationsFromInput(input.Translations)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.supplierRepo.Update(txCtx, supplier, replaceTranslations)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySupplierNameTaken))
		}
		return nil, domainerrors.InternalError(err)
	}
	return u.Get(ctx, id, lang)
}

// Delete removes a supplier
func (u *SupplierUsecase) Delete(ctx context.Context, id uuid.UUID, lang string) error {
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.supplierRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeySupplierNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}
