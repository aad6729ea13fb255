package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/infrastructure/models"
)

// BrandRepository implements brand data operations
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create creates a brand with its translation rows
func (r *BrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	m := r.toModel(brand)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return translateDBError(err)
	}
	*brand = *r.toEntity(m)
	return nil
}

// GetByID gets a brand by ID with all translations
func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	return r.getByField(ctx, "id = ?", id)
}

// GetBySlug gets a brand by slug
func (r *BrandRepository) GetBySlug(ctx context.Context, slug string) (*entities.Brand, error) {
	return r.getByField(ctx, "slug = ?", slug)
}

func (r *BrandRepository) getByField(ctx context.Context, query string, arg interface{}) (*entities.Brand, error) {
	var m models.Brand
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Translations").Where(query, arg).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update saves the brand row; when replaceTranslations is set the existing
// translation rows are deleted and the new set inserted
func (r *BrandRepository) Update(ctx context.Context, brand *entities.Brand, replaceTranslations bool) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Brand{}).Where("id = ?", brand.ID).
		Select("slug", "image").
		Updates(map[string]interface{}{
			"slug":  brand.Slug,
			"image": brand.Image.Ptr(),
		})
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	if replaceTranslations {
		if err := db.Where("brand_id = ?", brand.ID).Delete(&models.BrandTranslation{}).Error; err != nil {
			return err
		}
		rows := r.toTranslationModels(brand.ID, brand.Translations)
		if len(rows) > 0 {
			if err := db.Create(&rows).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete removes a brand and its translations
func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("brand_id = ?", id).Delete(&models.BrandTranslation{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Brand{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all brands with translations, newest first
func (r *BrandRepository) List(ctx context.Context) ([]*entities.Brand, error) {
	var brandModels []models.Brand
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Translations").
		Order("created_at DESC").Find(&brandModels).Error
	if err != nil {
		return nil, err
	}

	brands := make([]*entities.Brand, 0, len(brandModels))
	for i := range brandModels {
		brands = append(brands, r.toEntity(&brandModels[i]))
	}
	return brands, nil
}

func (r *BrandRepository) toModel(brand *entities.Brand) *models.Brand {
	return &models.Brand{
		ID:           brand.ID,
		Slug:         brand.Slug,
		Image:        brand.Image.Ptr(),
		CreatedAt:    brand.CreatedAt,
		UpdatedAt:    brand.UpdatedAt,
		Translations: r.toTranslationModels(brand.ID, brand.Translations),
	}
}

func (r *BrandRepository) toTranslationModels(brandID uuid.UUID, translations []entities.Translation) []models.BrandTranslation {
	rows := make([]models.BrandTranslation, 0, len(translations))
	for _, t := range translations {
		id := t.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		rows = append(rows, models.BrandTranslation{
			ID:          id,
			BrandID:     brandID,
			LanguageID:  t.LanguageID,
			Name:        t.Name,
			Description: strPtr(t.Description),
		})
	}
	return rows
}

func (r *BrandRepository) toEntity(m *models.Brand) *entities.Brand {
	translations := make([]entities.Translation, 0, len(m.Translations))
	for _, t := range m.Translations {
		translations = append(translations, entities.Translation{
			ID:          t.ID,
			LanguageID:  t.LanguageID,
			Name:        t.Name,
			Description: strVal(t.Description),
		})
	}
	return &entities.Brand{
		ID:           m.ID,
		Slug:         m.Slug,
		Image:        null.StringFromPtr(m.Image),
		Translations: translations,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
