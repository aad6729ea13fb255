package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
)

// BrandRepository defines brand data operations. Translations are loaded
// with every read and replaced wholesale on update.
type BrandRepository interface {
	Create(ctx context.Context, brand *entities.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Brand, error)
	Update(ctx context.Context, brand *entities.Brand, replaceTranslations bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Brand, error)
}

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Category, error)
	Update(ctx context.Context, category *entities.Category, replaceTranslations bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Category, error)
}

// SupplierRepository defines supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entities.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Supplier, error)
	GetByName(ctx context.Context, name string) (*entities.Supplier, error)
	Update(ctx context.Context, supplier *entities.Supplier, replaceTranslations bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Supplier, error)
}

// LanguageRepository defines language lookup and seeding
type LanguageRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Language, error)
	List(ctx context.Context) ([]*entities.Language, error)
	Upsert(ctx context.Context, language *entities.Language) error
}
