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
	"github.com/arms237/backend-vehicleShop/pkg/utils"
)

// VehicleRepository implements vehicle data operations
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create creates a vehicle with its image and translation rows
func (r *VehicleRepository) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	m := r.toModel(vehicle)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	vehicle.CreatedAt = m.CreatedAt
	vehicle.UpdatedAt = m.UpdatedAt
	return nil
}

// withRelations preloads the vehicle graph. A non-empty lang restricts the
// vehicle, category and brand translation rows to that language.
func (r *VehicleRepository) withRelations(db *gorm.DB, lang string) *gorm.DB {
	db = db.Preload("Admin").Preload("Images").Preload("Supplier.Translations")
	if lang == "" {
		return db.Preload("Translations").
			Preload("Category.Translations").
			Preload("Brand.Translations")
	}
	return db.Preload("Translations", "language_id = ?", lang).
		Preload("Category.Translations", "language_id = ?", lang).
		Preload("Brand.Translations", "language_id = ?", lang)
}

// GetByID gets a vehicle by ID with its full graph
func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID, lang string) (*entities.Vehicle, error) {
	var m models.Vehicle
	err := r.withRelations(GetDB(ctx, r.db).WithContext(ctx), lang).
		Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update saves the vehicle row; image and translation sets are replaced
// wholesale when the corresponding flag is set
func (r *VehicleRepository) Update(ctx context.Context, vehicle *entities.Vehicle, replaceImages, replaceTranslations bool) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := r.toModel(vehicle)
	result := db.Model(&models.Vehicle{}).Where("id = ?", vehicle.ID).
		Select("model", "body_type", "range", "condition", "status", "stock",
			"price", "rental_price_per_day", "first_registration", "country_origin",
			"axle_count", "axle_brand", "mileage", "emission_norm", "gearbox",
			"engine_power", "engine_size", "dimensions", "fuel_type", "tonnage",
			"tires", "cabin_type", "cabin_equipments", "specific_equipments",
			"admin_id", "category_id", "brand_id", "supplier_id").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	if replaceImages {
		if err := db.Where("vehicle_id = ?", vehicle.ID).Delete(&models.VehicleImage{}).Error; err != nil {
			return err
		}
		rows := r.toImageModels(vehicle.ID, vehicle.Images)
		if len(rows) > 0 {
			if err := db.Create(&rows).Error; err != nil {
				return err
			}
		}
	}

	if replaceTranslations {
		if err := db.Where("vehicle_id = ?", vehicle.ID).Delete(&models.VehicleTranslation{}).Error; err != nil {
			return err
		}
		rows := r.toTranslationModels(vehicle.ID, vehicle.Translations)
		if len(rows) > 0 {
			if err := db.Create(&rows).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete removes a vehicle with its images and translations
func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("vehicle_id = ?", id).Delete(&models.VehicleImage{}).Error; err != nil {
		return err
	}
	if err := db.Where("vehicle_id = ?", id).Delete(&models.VehicleTranslation{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists vehicles with their graphs, newest first, honoring the
// pagination window. A zero limit returns everything.
func (r *VehicleRepository) List(ctx context.Context, lang string, pagination utils.PaginationParams) ([]*entities.Vehicle, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Vehicle{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.withRelations(db, lang).Order("created_at DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	var vehicleModels []models.Vehicle
	if err := query.Find(&vehicleModels).Error; err != nil {
		return nil, 0, err
	}

	vehicles := make([]*entities.Vehicle, 0, len(vehicleModels))
	for i := range vehicleModels {
		vehicles = append(vehicles, r.toEntity(&vehicleModels[i]))
	}
	return vehicles, total, nil
}

// ListByCategory lists the vehicles of one category
func (r *VehicleRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, lang string) ([]*entities.Vehicle, error) {
	cond := func(db *gorm.DB) *gorm.DB { return db.Where("category_id = ?", categoryID) }
	return r.list(ctx, lang, cond)
}

func (r *VehicleRepository) list(ctx context.Context, lang string, cond func(*gorm.DB) *gorm.DB) ([]*entities.Vehicle, error) {
	query := r.withRelations(GetDB(ctx, r.db).WithContext(ctx), lang).Order("created_at DESC")
	if cond != nil {
		query = cond(query)
	}

	var vehicleModels []models.Vehicle
	if err := query.Find(&vehicleModels).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*entities.Vehicle, 0, len(vehicleModels))
	for i := range vehicleModels {
		vehicles = append(vehicles, r.toEntity(&vehicleModels[i]))
	}
	return vehicles, nil
}

func (r *VehicleRepository) toModel(v *entities.Vehicle) *models.Vehicle {
	return &models.Vehicle{
		ID:                 v.ID,
		Model:              v.Model,
		BodyType:           v.BodyType.Ptr(),
		Range:              v.Range.Ptr(),
		Condition:          v.Condition,
		Status:             string(v.Status),
		Stock:              v.Stock,
		Price:              v.Price.Ptr(),
		RentalPricePerDay:  v.RentalPricePerDay.Ptr(),
		FirstRegistration:  v.FirstRegistration.Ptr(),
		CountryOrigin:      v.CountryOrigin.Ptr(),
		AxleCount:          v.AxleCount.Ptr(),
		AxleBrand:          v.AxleBrand.Ptr(),
		Mileage:            v.Mileage.Ptr(),
		EmissionNorm:       v.EmissionNorm.Ptr(),
		Gearbox:            v.Gearbox.Ptr(),
		EnginePower:        v.EnginePower.Ptr(),
		EngineSize:         v.EngineSize.Ptr(),
		Dimensions:         v.Dimensions.Ptr(),
		FuelType:           v.FuelType.Ptr(),
		Tonnage:            v.Tonnage.Ptr(),
		Tires:              v.Tires.Ptr(),
		CabinType:          v.CabinType.Ptr(),
		CabinEquipments:    v.CabinEquipments.Ptr(),
		SpecificEquipments: v.SpecificEquipments.Ptr(),
		AdminID:            v.AdminID,
		CategoryID:         v.CategoryID,
		BrandID:            v.BrandID,
		SupplierID:         v.SupplierID,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
		Images:             r.toImageModels(v.ID, v.Images),
		Translations:       r.toTranslationModels(v.ID, v.Translations),
	}
}

func (r *VehicleRepository) toImageModels(vehicleID uuid.UUID, images []entities.VehicleImage) []models.VehicleImage {
	rows := make([]models.VehicleImage, 0, len(images))
	for _, img := range images {
		id := img.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		rows = append(rows, models.VehicleImage{
			ID:        id,
			VehicleID: vehicleID,
			URL:       img.URL,
			Alt:       img.Alt.Ptr(),
			IsMain:    img.IsMain,
		})
	}
	return rows
}

func (r *VehicleRepository) toTranslationModels(vehicleID uuid.UUID, translations []entities.VehicleTranslation) []models.VehicleTranslation {
	rows := make([]models.VehicleTranslation, 0, len(translations))
	for _, t := range translations {
		id := t.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		rows = append(rows, models.VehicleTranslation{
			ID:          id,
			VehicleID:   vehicleID,
			LanguageID:  t.LanguageID,
			Title:       t.Title.Ptr(),
			Description: t.Description.Ptr(),
		})
	}
	return rows
}

func (r *VehicleRepository) toEntity(m *models.Vehicle) *entities.Vehicle {
	images := make([]entities.VehicleImage, 0, len(m.Images))
	for _, img := range m.Images {
		images = append(images, entities.VehicleImage{
			ID:     img.ID,
			URL:    img.URL,
			Alt:    null.StringFromPtr(img.Alt),
			IsMain: img.IsMain,
		})
	}

	translations := make([]entities.VehicleTranslation, 0, len(m.Translations))
	for _, t := range m.Translations {
		translations = append(translations, entities.VehicleTranslation{
			ID:          t.ID,
			LanguageID:  t.LanguageID,
			Title:       null.StringFromPtr(t.Title),
			Description: null.StringFromPtr(t.Description),
		})
	}

	v := &entities.Vehicle{
		ID:                 m.ID,
		Model:              m.Model,
		BodyType:           null.StringFromPtr(m.BodyType),
		Range:              null.StringFromPtr(m.Range),
		Condition:          m.Condition,
		Status:             entities.VehicleStatus(m.Status),
		Stock:              m.Stock,
		Price:              null.Float64FromPtr(m.Price),
		RentalPricePerDay:  null.Float64FromPtr(m.RentalPricePerDay),
		FirstRegistration:  null.TimeFromPtr(m.FirstRegistration),
		CountryOrigin:      null.StringFromPtr(m.CountryOrigin),
		AxleCount:          null.IntFromPtr(m.AxleCount),
		AxleBrand:          null.StringFromPtr(m.AxleBrand),
		Mileage:            null.IntFromPtr(m.Mileage),
		EmissionNorm:       null.StringFromPtr(m.EmissionNorm),
		Gearbox:            null.StringFromPtr(m.Gearbox),
		EnginePower:        null.IntFromPtr(m.EnginePower),
		EngineSize:         null.IntFromPtr(m.EngineSize),
		Dimensions:         null.StringFromPtr(m.Dimensions),
		FuelType:           null.StringFromPtr(m.FuelType),
		Tonnage:            null.StringFromPtr(m.Tonnage),
		Tires:              null.StringFromPtr(m.Tires),
		CabinType:          null.StringFromPtr(m.CabinType),
		CabinEquipments:    null.StringFromPtr(m.CabinEquipments),
		SpecificEquipments: null.StringFromPtr(m.SpecificEquipments),
		AdminID:            m.AdminID,
		CategoryID:         m.CategoryID,
		BrandID:            m.BrandID,
		SupplierID:         m.SupplierID,
		Images:             images,
		Translations:       translations,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	if m.Admin.ID != uuid.Nil {
		v.Admin = &entities.AdminSummary{
			ID:        m.Admin.ID,
			FirstName: m.Admin.FirstName,
			LastName:  m.Admin.LastName,
			Email:     m.Admin.Email,
		}
	}
	if m.Category.ID != uuid.Nil {
		v.Category = NewCategoryRepository(r.db).toEntity(&m.Category)
	}
	if m.Brand.ID != uuid.Nil {
		v.Brand = NewBrandRepository(r.db).toEntity(&m.Brand)
	}
	if m.Supplier.ID != uuid.Nil {
		v.Supplier = NewSupplierRepository(r.db).toEntity(&m.Supplier)
	}
	return v
}
