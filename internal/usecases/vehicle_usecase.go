package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/domain/repositories"
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
	"github.com/arms237/backend-vehicleShop/pkg/utils"
)

const dateOnlyLayout = "2006-01-02"

// parseDate accepts a date-only value or a full RFC 3339 timestamp.
// Date-only values land on midnight UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// VehicleUsecase handles vehicle listing logic
type VehicleUsecase struct {
	vehicleRepo  repositories.VehicleRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	brandRepo    repositories.BrandRepository
	supplierRepo repositories.SupplierRepository
	uow          repositories.UnitOfWork
}

// NewVehicleUsecase creates a new vehicle usecase
func NewVehicleUsecase(
	vehicleRepo repositories.VehicleRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	brandRepo repositories.BrandRepository,
	supplierRepo repositories.SupplierRepository,
	uow repositories.UnitOfWork,
) *VehicleUsecase {
	return &VehicleUsecase{
		vehicleRepo:  vehicleRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		supplierRepo: supplierRepo,
		uow:          uow,
	}
}

// checkAdmin verifies the referenced admin account exists
func (u *VehicleUsecase) checkAdmin(ctx context.Context, id uuid.UUID, lang string) error {
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeyUserNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *VehicleUsecase) checkCategory(ctx context.Context, id uuid.UUID, lang string) error {
	if _, err := u.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeyCategoryNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *VehicleUsecase) checkBrand(ctx context.Context, id uuid.UUID, lang string) error {
	if _, err := u.brandRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeyBrandNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *VehicleUsecase) checkSupplier(ctx context.Context, id uuid.UUID, lang string) error {
	if _, err := u.supplierRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeySupplierNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func vehicleImagesFromInput(inputs []entities.VehicleImageInput) []entities.VehicleImage {
	images := make([]entities.VehicleImage, 0, len(inputs))
	for _, in := range inputs {
		img := entities.VehicleImage{URL: in.URL, IsMain: in.IsMain}
		if in.Alt != "" {
			img.Alt = null.StringFrom(in.Alt)
		}
		images = append(images, img)
	}
	return images
}

func vehicleTranslationsFromInput(inputs []entities.VehicleTranslationInput) []entities.VehicleTranslation {
	rows := make([]entities.VehicleTranslation, 0, len(inputs))
	for _, in := range inputs {
		row := entities.VehicleTranslation{LanguageID: i18n.Resolve(in.Language)}
		if in.Title != "" {
			row.Title = null.StringFrom(in.Title)
		}
		if in.Description != "" {
			row.Description = null.StringFrom(in.Description)
		}
		rows = append(rows, row)
	}
	return rows
}

// Create creates a vehicle with its images and translations. Every
// referenced admin, category, brand and supplier must exist.
func (u *VehicleUsecase) Create(ctx context.Context, input *entities.CreateVehicleInput, lang string) (*entities.Vehicle, error) {
	if err := u.checkAdmin(ctx, input.AdminID, lang); err != nil {
		return nil, err
	}
	if err := u.checkCategory(ctx, input.CategoryID, lang); err != nil {
		return nil, err
	}
	if err := u.checkBrand(ctx, input.BrandID, lang); err != nil {
		return nil, err
	}
	if err := u.checkSupplier(ctx, input.SupplierID, lang); err != nil {
		return nil, err
	}

	v := &entities.Vehicle{
		Model:     input.Model,
		Condition: input.Condition,
		Status:    entities.VehicleAvailable,
		Stock:     1,
	}
	if input.Status != "" {
		v.Status = entities.VehicleStatus(input.Status)
	}
	if input.Stock != nil {
		v.Stock = *input.Stock
	}
	if input.FirstRegistration != "" {
		t, err := parseDate(input.FirstRegistration)
		if err != nil {
			return nil, domainerrors.BadRequest(i18n.T(lang, i18n.KeyMissingFields))
		}
		v.FirstRegistration = null.TimeFrom(t)
	}

	v.BodyType = optString(input.BodyType)
	v.Range = optString(input.Range)
	v.CountryOrigin = optString(input.CountryOrigin)
	v.AxleBrand = optString(input.AxleBrand)
	v.EmissionNorm = optString(input.EmissionNorm)
	v.Gearbox = optString(input.Gearbox)
	v.Dimensions = optString(input.Dimensions)
	v.FuelType = optString(input.FuelType)
	v.Tonnage = optString(input.Tonnage)
	v.Tires = optString(input.Tires)
	v.CabinType = optString(input.CabinType)
	v.CabinEquipments = optString(input.CabinEquipments)
	v.SpecificEquipments = optString(input.SpecificEquipments)
	v.Price = null.Float64FromPtr(input.Price)
	v.RentalPricePerDay = null.Float64FromPtr(input.RentalPricePerDay)
	v.AxleCount = null.IntFromPtr(input.AxleCount)
	v.Mileage = null.IntFromPtr(input.Mileage)
	v.EnginePower = null.IntFromPtr(input.EnginePower)
	v.EngineSize = null.IntFromPtr(input.EngineSize)

	v.AdminID = input.AdminID
	v.CategoryID = input.CategoryID
	v.BrandID = input.BrandID
	v.SupplierID = input.SupplierID
	v.Images = vehicleImagesFromInput(input.Images)
	v.Translations = vehicleTranslationsFromInput(input.Translations)

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.vehicleRepo.Create(txCtx, v)
	})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return u.Get(ctx, v.ID, "", lang)
}

// Get returns one vehicle with its graph, translations filtered to the
// requested language
func (u *VehicleUsecase) Get(ctx context.Context, id uuid.UUID, translationLang, lang string) (*entities.Vehicle, error) {
	v, err := u.vehicleRepo.GetByID(ctx, id, translationLang)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeyVehicleNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}
	return v, nil
}

// List returns a page of vehicles with translations in the requested
// language. A zero limit returns all vehicles.
func (u *VehicleUsecase) List(ctx context.Context, translationLang string, page, limit int) ([]*entities.Vehicle, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	vehicles, total, err := u.vehicleRepo.List(ctx, translationLang, params)
	if err != nil {
		return nil, utils.PaginationMeta{}, domainerrors.InternalError(err)
	}
	return vehicles, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// ListByCategory returns the vehicles of one category
func (u *VehicleUsecase) ListByCategory(ctx context.Context, categoryID uuid.UUID, translationLang string) ([]*entities.Vehicle, error) {
	vehicles, err := u.vehicleRepo.ListByCategory(ctx, categoryID, translationLang)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return vehicles, nil
}

// Update patches the provided scalar fields; non-empty image and translation
// lists replace the whole corresponding set atomically
func (u *VehicleUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateVehicleInput, lang string) (*entities.Vehicle, error) {
	v, err := u.Get(ctx, id, "", lang)
	if err != nil {
		return nil, err
	}

	if input.Model != nil {
		v.Model = *input.Model
	}
	if input.Condition != nil {
		v.Condition = *input.Condition
	}
	if input.Status != nil {
		v.Status = entities.VehicleStatus(*input.Status)
	}
	if input.Stock != nil {
		v.Stock = *input.Stock
	}
	if input.FirstRegistration != nil {
		t, err := parseDate(*input.FirstRegistration)
		if err != nil {
			return nil, domainerrors.BadRequest(i18n.T(lang, i18n.KeyMissingFields))
		}
		v.FirstRegistration = null.TimeFrom(t)
	}

	patchString(&v.BodyType, input.BodyType)
	patchString(&v.Range, input.Range)
	patchString(&v.CountryOrigin, input.CountryOrigin)
	patchString(&v.AxleBrand, input.AxleBrand)
	patchString(&v.EmissionNorm, input.EmissionNorm)
	patchString(&v.Gearbox, input.Gearbox)
	patchString(&v.Dimensions, input.Dimensions)
	patchString(&v.FuelType, input.FuelType)
	patchString(&v.Tonnage, input.Tonnage)
	patchString(&v.Tires, input.Tires)
	patchString(&v.CabinType, input.CabinType)
	patchString(&v.CabinEquipments, input.CabinEquipments)
	patchString(&v.SpecificEquipments, input.SpecificEquipments)

	if input.Price != nil {
		v.Price = null.Float64From(*input.Price)
	}
	if input.RentalPricePerDay != nil {
		v.RentalPricePerDay = null.Float64From(*input.RentalPricePerDay)
	}
	if input.AxleCount != nil {
		v.AxleCount = null.IntFrom(*input.AxleCount)
	}
	if input.Mileage != nil {
		v.Mileage = null.IntFrom(*input.Mileage)
	}
	if input.EnginePower != nil {
		v.EnginePower = null.IntFrom(*input.EnginePower)
	}
	if input.EngineSize != nil {
		v.EngineSize = null.IntFrom(*input.EngineSize)
	}
	if input.AdminID != nil {
		if err := u.checkAdmin(ctx, *input.AdminID, lang); err != nil {
			return nil, err
		}
		v.AdminID = *input.AdminID
	}
	if input.CategoryID != nil {
		if err := u.checkCategory(ctx, *input.CategoryID, lang); err != nil {
			return nil, err
		}
		v.CategoryID = *input.CategoryID
	}
	if input.BrandID != nil {
		if err := u.checkBrand(ctx, *input.BrandID, lang); err != nil {
			return nil, err
		}
		v.BrandID = *input.BrandID
	}
	if input.SupplierID != nil {
		if err := u.checkSupplier(ctx, *input.SupplierID, lang); err != nil {
			return nil, err
		}
		v.SupplierID = *input.SupplierID
	}

	replaceImages := len(input.Images) > 0
	if replaceImages {
		v.Images = vehicleImagesFromInput(input.Images)
	}
	replaceTranslations := len(input.Translations) > 0
	if replaceTranslations {
		v.Translations = vehicleTranslationsFromInput(input.Translations)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.vehicleRepo.Update(txCtx, v, replaceImages, replaceTranslations)
	})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return u.Get(ctx, id, "", lang)
}

// Delete removes a vehicle with its images and translations
func (u *VehicleUsecase) Delete(ctx context.Context, id uuid.UUID, lang string) error {
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.vehicleRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeyVehicleNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func optString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

func patchString(dst *null.String, src *string) {
	if src != nil {
		*dst = null.StringFrom(*src)
	}
}
