package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	"github.com/arms237/backend-vehicleShop/pkg/utils"
)

// VehicleRepository defines vehicle data operations. Reads load images,
// admin, brand, supplier and the category/brand/vehicle translations for
// the given language; an empty lang loads all translation rows.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entities.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID, lang string) (*entities.Vehicle, error)
	Update(ctx context.Context, vehicle *entities.Vehicle, replaceImages, replaceTranslations bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, lang string, pagination utils.PaginationParams) ([]*entities.Vehicle, int64, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, lang string) ([]*entities.Vehicle, error)
}
