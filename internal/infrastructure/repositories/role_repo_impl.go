package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/infrastructure/models"
)

// RoleRepository implements role lookup and creation
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByName gets a role by its name
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*entities.Role, error) {
	var m models.Role
	err := GetDB(ctx, r.db).WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Role{ID: m.ID, Name: m.Name}, nil
}

// GetOrCreate returns the role with the given name, creating it on first use
func (r *RoleRepository) GetOrCreate(ctx context.Context, name string) (*entities.Role, error) {
	role, err := r.GetByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	m := models.Role{ID: uuid.New(), Name: name}
	if createErr := GetDB(ctx, r.db).WithContext(ctx).Create(&m).Error; createErr != nil {
		// A concurrent request may have created it in between
		if role, err = r.GetByName(ctx, name); err == nil {
			return role, nil
		}
		return nil, createErr
	}
	return &entities.Role{ID: m.ID, Name: m.Name}, nil
}
