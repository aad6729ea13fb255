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

// CategoryRepository implements category data operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a category with its translation rows
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m := r.toModel(category)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return translateDBError(err)
	}
	*category = *r.toEntity(m)
	return nil
}

// GetByID gets a category by ID with all translations
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	return r.getByField(ctx, "id = ?", id)
}

// GetBySlug gets a category by slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	return r.getByField(ctx, "slug = ?", slug)
}

func (r *CategoryRepository) getByField(ctx context.Context, query string, arg interface{}) (*entities.Category, error) {
	var m models.Category
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Translations").Where(query, arg).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update saves the category row; when replaceTranslations is set the existing
// translation rows are deleted and the new set inserted
func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category, replaceTranslations bool) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Category{}).Where("id = ?", category.ID).
		Select("slug", "image").
		Updates(map[string]interface{}{
			"slug":  category.Slug,
			"image": category.Image.Ptr(),
		})
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	if replaceTranslations {
		if err := db.Where("category_id = ?", category.ID).Delete(&models.CategoryTranslation{}).Error; err != nil {
			return err
		}
		rows := r.toTranslationModels(category.ID, category.Translations)
		if len(rows) > 0 {
			if err := db.Create(&rows).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete removes a category and its translations
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("category_id = ?", id).Delete(&models.CategoryTranslation{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all categories with translations, newest first
func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var categoryModels []models.Category
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Translations").
		Order("created_at DESC").Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, r.toEntity(&categoryModels[i]))
	}
	return categories, nil
}

func (r *CategoryRepository) toModel(category *entities.Category) *models.Category {
	return &models.Category{
		ID:           category.ID,
		Slug:         category.Slug,
		Image:        category.Image.Ptr(),
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
		Translations: r.toTranslationModels(category.ID, category.Translations),
	}
}

func (r *CategoryRepository) toTranslationModels(categoryID uuid.UUID, translations []entities.Translation) []models.CategoryTranslation {
	rows := make([]models.CategoryTranslation, 0, len(translations))
	for _, t := range translations {
		id := t.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		rows = append(rows, models.CategoryTranslation{
			ID:          id,
			CategoryID:  categoryID,
			LanguageID:  t.LanguageID,
			Name:        t.Name,
			Description: strPtr(t.Description),
		})
	}
	return rows
}

func (r *CategoryRepository) toEntity(m *models.Category) *entities.Category {
	translations := make([]entities.Translation, 0, len(m.Translations))
	for _, t := range m.Translations {
		translations = append(translations, entities.Translation{
			ID:          t.ID,
			LanguageID:  t.LanguageID,
			Name:        t.Name,
			Description: strVal(t.Description),
		})
	}
	return &entities.Category{
		ID:           m.ID,
		Slug:         m.Slug,
		Image:        null.StringFromPtr(m.Image),
		Translations: translations,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
