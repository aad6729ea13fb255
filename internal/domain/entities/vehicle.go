package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VehicleStatus is the availability state of a vehicle
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "available"
	VehicleRented    VehicleStatus = "rented"
	VehicleSold      VehicleStatus = "sold"
)

// VehicleImage is one image attached to a vehicle
type VehicleImage struct {
	ID     uuid.UUID   `json:"id"`
	URL    string      `json:"url"`
	Alt    null.String `json:"alt,omitempty"`
	IsMain bool        `json:"isMain"`
}

// VehicleTranslation is the localized title/description of a vehicle
type VehicleTranslation struct {
	ID          uuid.UUID   `json:"id"`
	LanguageID  string      `json:"language"`
	Title       null.String `json:"title,omitempty"`
	Description null.String `json:"description,omitempty"`
}

// AdminSummary is the projection of the managing user embedded in vehicle
// responses
type AdminSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// Vehicle is a truck or utility vehicle listed on the marketplace
type Vehicle struct {
	ID                 uuid.UUID     `json:"id"`
	Model              string        `json:"model"`
	BodyType           null.String   `json:"bodyType,omitempty"`
	Range              null.String   `json:"range,omitempty"`
	Condition          string        `json:"condition"`
	Status             VehicleStatus `json:"status"`
	Stock              int           `json:"stock"`
	Price              null.Float64  `json:"price,omitempty"`
	RentalPricePerDay  null.Float64  `json:"rentalPricePerDay,omitempty"`
	FirstRegistration  null.Time     `json:"firstRegistration,omitempty"`
	CountryOrigin      null.String   `json:"countryOrigin,omitempty"`
	AxleCount          null.Int      `json:"axleCount,omitempty"`
	AxleBrand          null.String   `json:"axleBrand,omitempty"`
	Mileage            null.Int      `json:"mileage,omitempty"`
	EmissionNorm       null.String   `json:"emissionNorm,omitempty"`
	Gearbox            null.String   `json:"gearbox,omitempty"`
	EnginePower        null.Int      `json:"enginePower,omitempty"`
	EngineSize         null.Int      `json:"engineSize,omitempty"`
	Dimensions         null.String   `json:"dimensions,omitempty"`
	FuelType           null.String   `json:"fuelType,omitempty"`
	Tonnage            null.String   `json:"tonnage,omitempty"`
	Tires              null.String   `json:"tires,omitempty"`
	CabinType          null.String   `json:"cabinType,omitempty"`
	CabinEquipments    null.String   `json:"cabinEquipments,omitempty"`
	SpecificEquipments null.String   `json:"specificEquipments,omitempty"`

	AdminID    uuid.UUID `json:"adminId"`
	CategoryID uuid.UUID `json:"categoryId"`
	BrandID    uuid.UUID `json:"brandId"`
	SupplierID uuid.UUID `json:"supplierId"`

	Admin        *AdminSummary        `json:"admin,omitempty"`
	Category     *Category            `json:"category,omitempty"`
	Brand        *Brand               `json:"brand,omitempty"`
	Supplier     *Supplier            `json:"supplier,omitempty"`
	Images       []VehicleImage       `json:"images"`
	Translations []VehicleTranslation `json:"translations"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VehicleImageInput is the inbound form of a vehicle image
type VehicleImageInput struct {
	URL    string `json:"url" binding:"required"`
	Alt    string `json:"alt"`
	IsMain bool   `json:"isMain"`
}

// VehicleTranslationInput is the inbound form of a vehicle translation
type VehicleTranslationInput struct {
	Language    string `json:"language" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateVehicleInput carries the vehicle creation fields
type CreateVehicleInput struct {
	Model              string   `json:"model" binding:"required"`
	BodyType           string   `json:"bodyType"`
	Range              string   `json:"range"`
	Condition          string   `json:"condition" binding:"required"`
	Status             string   `json:"status"`
	Stock              *int     `json:"stock"`
	Price              *float64 `json:"price"`
	RentalPricePerDay  *float64 `json:"rentalPricePerDay"`
	FirstRegistration  string   `json:"firstRegistration"`
	CountryOrigin      string   `json:"countryOrigin"`
	AxleCount          *int     `json:"axleCount"`
	AxleBrand          string   `json:"axleBrand"`
	Mileage            *int     `json:"mileage"`
	EmissionNorm       string   `json:"emissionNorm"`
	Gearbox            string   `json:"gearbox"`
	EnginePower        *int     `json:"enginePower"`
	EngineSize         *int     `json:"engineSize"`
	Dimensions         string   `json:"dimensions"`
	FuelType           string   `json:"fuelType"`
	Tonnage            string   `json:"tonnage"`
	Tires              string   `json:"tires"`
	CabinType          string   `json:"cabinType"`
	CabinEquipments    string   `json:"cabinEquipments"`
	SpecificEquipments string   `json:"specificEquipments"`

	AdminID    uuid.UUID `json:"adminId" binding:"required"`
	CategoryID uuid.UUID `json:"categoryId" binding:"required"`
	BrandID    uuid.UUID `json:"brandId" binding:"required"`
	SupplierID uuid.UUID `json:"supplierId" binding:"required"`

	Images       []VehicleImageInput       `json:"images" binding:"omitempty,dive"`
	Translations []VehicleTranslationInput `json:"translations" binding:"omitempty,dive"`
}

// UpdateVehicleInput carries the vehicle update fields; nil scalar fields are
// left untouched, non-nil image/translation lists replace the whole set
type UpdateVehicleInput struct {
	Model              *string  `json:"model"`
	BodyType           *string  `json:"bodyType"`
	Range              *string  `json:"range"`
	Condition          *string  `json:"condition"`
	Status             *string  `json:"status"`
	Stock              *int     `json:"stock"`
	Price              *float64 `json:"price"`
	RentalPricePerDay  *float64 `json:"rentalPricePerDay"`
	FirstRegistration  *string  `json:"firstRegistration"`
	CountryOrigin      *string  `json:"countryOrigin"`
	AxleCount          *int     `json:"axleCount"`
	AxleBrand          *string  `json:"axleBrand"`
	Mileage            *int     `json:"mileage"`
	EmissionNorm       *string  `json:"emissionNorm"`
	Gearbox            *string  `json:"gearbox"`
	EnginePower        *int     `json:"enginePower"`
	EngineSize         *int     `json:"engineSize"`
	Dimensions         *string  `json:"dimensions"`
	FuelType           *string  `json:"fuelType"`
	Tonnage            *string  `json:"tonnage"`
	Tires              *string  `json:"tires"`
	CabinType          *string  `json:"cabinType"`
	CabinEquipments    *string  `json:"cabinEquipments"`
	SpecificEquipments *string  `json:"specificEquipments"`

	AdminID    *uuid.UUID `json:"adminId"`
	CategoryID *uuid.UUID `json:"categoryId"`
	BrandID    *uuid.UUID `json:"brandId"`
	SupplierID *uuid.UUID `json:"supplierId"`

	Images       []VehicleImageInput       `json:"images" binding:"omitempty,dive"`
	Translations []VehicleTranslationInput `json:"translations" binding:"omitempty,dive"`
}
