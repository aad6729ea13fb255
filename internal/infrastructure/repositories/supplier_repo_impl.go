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

// SupplierRepository implements supplier data operations
type SupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Create creates a supplier with its translation rows
func (r *SupplierRepository) Create(ctx context.Context, supplier *entities.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	m := r.toModel(supplier)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return translateDBError(err)
	}
	*supplier = *r.toEntity(m)
	return nil
}

// GetByID gets a supplier by ID with all translations
func (r *SupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Supplier, error) {
	return r.getByField(ctx, "id = ?", id)
}

// GetByName gets a supplier by its unique name
func (r *SupplierRepository) GetByName(ctx context.Context, name string) (*entities.Supplier, error) {
	return r.getByField(ctx, "name = ?", name)
}

func (r *SupplierRepository) getByField(ctx context.Context, query string, arg interface{}) (*entities.Supplier, error) {
	var m models.Supplier
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Translations").Where(query, arg).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update saves the supplier row; when replaceTranslations is set the existing
// translation rows are deleted and the new set inserted
func (r *SupplierRepository) Update(ctx context.Context, supplier *entities.Supplier, replaceTranslations bool) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Supplier{}).Where("id = ?", supplier.ID).
		Select("name", "address", "phone", "email").
		Updates(map[string]interface{}{
			"name":    supplier.Name,
			"address": supplier.Address.Ptr(),
			"phone":   supplier.Phone.Ptr(),
			"email":   supplier.Email.Ptr(),
		})
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	if replaceTranslations {
		if err := db.Where("supplier_id = ?", supplier.ID).Delete(&models.SupplierTranslation{}).Error; err != nil {
			return err
		}
		rows := r.toTranslationModels(supplier.ID, supplier.Translations)
		if len(rows) > 0 {
			if err := db.Create(&rows).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete removes a supplier and its translations
func (r *SupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("supplier_id = ?", id).Delete(&models.SupplierTranslation{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all suppliers with translations, newest first
func (r *SupplierRepository) List(ctx context.Context) ([]*entities.Supplier, error) {
	var supplierModels []models.Supplier
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Translations").
		Order("created_at DESC").Find(&supplierModels).Error
	if err != nil {
		return nil, err
	}

	suppliers := make([]*entities.Supplier, 0, len(supplierModels))
	for i := range supplierModels {
		suppliers = append(suppliers, r.toEntity(&supplierModels[i]))
	}
	return suppliers, nil
}

func (r *SupplierRepository) toModel(supplier *entities.Supplier) *models.Supplier {
	return &models.Supplier{
		ID:           supplier.ID,
		Name:         supplier.Name,
		Address:      supplier.Address.Ptr(),
		Phone:        supplier.Phone.Ptr(),
		Email:        supplier.Email.Ptr(),
		CreatedAt:    supplier.CreatedAt,
		UpdatedAt:    supplier.UpdatedAt,
		Translations: r.toTranslationModels(supplier.ID, supplier.Translations),
	}
}

func (r *SupplierRepository) toTranslationModels(supplierID uuid.UUID, translations []entities.Translation) []models.SupplierTranslation {
	rows := make([]models.SupplierTranslation, 0, len(translations))
	for _, t := range translations {
		id := t.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		rows = append(rows, models.SupplierTranslation{
			ID:          id,
			SupplierID:  supplierID,
			LanguageID:  t.LanguageID,
			Name:        t.Name,
			Description: strPtr(t.Description),
		})
	}
	return rows
}

func (r *SupplierRepository) toEntity(m *models.Supplier) *entities.Supplier {
	translations := make([]entities.Translation, 0, len(m.Translations))
	for _, t := range m.Translations {
		translations = append(translations, entities.Translation{
			ID:          t.ID,
			LanguageID:  t.LanguageID,
			Name:        t.Name,
			Description: strVal(t.Description),
		})
	}
	return &entities.Supplier{
		ID:           m.ID,
		Name:         m.Name,
		Address:      null.StringFromPtr(m.Address),
		Phone:        null.StringFromPtr(m.Phone),
		Email:        null.StringFromPtr(m.Email),
		Translations: translations,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
