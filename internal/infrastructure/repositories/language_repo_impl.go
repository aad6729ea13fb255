package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/infrastructure/models"
)

// LanguageRepository implements language lookup and seeding
type LanguageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository creates a new language repository
func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

// GetByID gets a language by its code
func (r *LanguageRepository) GetByID(ctx context.Context, id string) (*entities.Language, error) {
	var m models.Language
	err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Language{ID: m.ID, Name: m.Name}, nil
}

// List lists all languages
func (r *LanguageRepository) List(ctx context.Context) ([]*entities.Language, error) {
	var languageModels []models.Language
	err := GetDB(ctx, r.db).WithContext(ctx).Order("id ASC").Find(&languageModels).Error
	if err != nil {
		return nil, err
	}
	languages := make([]*entities.Language, 0, len(languageModels))
	for _, m := range languageModels {
		languages = append(languages, &entities.Language{ID: m.ID, Name: m.Name})
	}
	return languages, nil
}

// Upsert inserts the language or updates its name when it already exists
func (r *LanguageRepository) Upsert(ctx context.Context, language *entities.Language) error {
	m := models.Language{ID: language.ID, Name: language.Name}
	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&m).Error
}
