package models

import (
	"time"

	"github.com/google/uuid"
)

type Language struct {
	ID   string `gorm:"type:varchar(10);primaryKey"`
	Name string `gorm:"type:varchar(50);not null"`
}

type Brand struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Image        *string   `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Translations []BrandTranslation `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

type BrandTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LanguageID  string    `gorm:"type:varchar(10);not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
}

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Image        *string   `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Translations []CategoryTranslation `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type CategoryTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LanguageID  string    `gorm:"type:varchar(10);not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
}

type Supplier struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Address      *string   `gorm:"type:varchar(500)"`
	Phone        *string   `gorm:"type:varchar(50)"`
	Email        *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Translations []SupplierTranslation `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}

type SupplierTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LanguageID  string    `gorm:"type:varchar(10);not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
}
