package models

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Model              string    `gorm:"type:varchar(255);not null"`
	BodyType           *string   `gorm:"type:varchar(100)"`
	Range              *string   `gorm:"type:varchar(100)"`
	Condition          string    `gorm:"type:varchar(50);not null"`
	Status             string    `gorm:"type:varchar(50);not null;default:'available';index"`
	Stock              int       `gorm:"not null;default:1"`
	Price              *float64
	RentalPricePerDay  *float64
	FirstRegistration  *time.Time `gorm:"type:timestamp"`
	CountryOrigin      *string    `gorm:"type:varchar(100)"`
	AxleCount          *int
	AxleBrand          *string `gorm:"type:varchar(100)"`
	Mileage            *int
	EmissionNorm       *string `gorm:"type:varchar(50)"`
	Gearbox            *string `gorm:"type:varchar(50)"`
	EnginePower        *int
	EngineSize         *int
	Dimensions         *string `gorm:"type:varchar(255)"`
	FuelType           *string `gorm:"type:varchar(50)"`
	Tonnage            *string `gorm:"type:varchar(50)"`
	Tires              *string `gorm:"type:varchar(100)"`
	CabinType          *string `gorm:"type:varchar(100)"`
	CabinEquipments    *string `gorm:"type:text"`
	SpecificEquipments *string `gorm:"type:text"`

	AdminID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	BrandID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Admin        User                 `gorm:"foreignKey:AdminID"`
	Category     Category             `gorm:"foreignKey:CategoryID"`
	Brand        Brand                `gorm:"foreignKey:BrandID"`
	Supplier     Supplier             `gorm:"foreignKey:SupplierID"`
	Images       []VehicleImage       `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Translations []VehicleTranslation `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

type VehicleImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	Alt       *string   `gorm:"type:varchar(255)"`
	IsMain    bool      `gorm:"not null;default:false"`
}

type VehicleTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID `gorm:"type:uuid;not null;index"`
	LanguageID  string    `gorm:"type:varchar(10);not null;index"`
	Title       *string   `gorm:"type:varchar(255)"`
	Description *string   `gorm:"type:text"`
}
