package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TotalAmount float64    `gorm:"not null"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	StartDate   *time.Time `gorm:"type:timestamp"`
	EndDate     *time.Time `gorm:"type:timestamp"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User                User                 `gorm:"foreignKey:UserID"`
	VehicleTransactions []VehicleTransaction `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

type VehicleTransaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Price         float64   `gorm:"not null"`
	Quantity      int       `gorm:"not null;default:1"`

	Vehicle Vehicle `gorm:"foreignKey:VehicleID"`
}
