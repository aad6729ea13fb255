package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Supplier is a vehicle provider with a unique name
type Supplier struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Address      null.String   `json:"address,omitempty"`
	Phone        null.String   `json:"phone,omitempty"`
	Email        null.String   `json:"email,omitempty"`
	Translations []Translation `json:"translations"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CreateSupplierInput carries the supplier creation fields
type CreateSupplierInput struct {
	Name         string             `json:"name" binding:"required"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email" binding:"omitempty,email"`
	Translations []TranslationInput `json:"translations" binding:"omitempty,dive"`
}

// UpdateSupplierInput carries the supplier update fields
type UpdateSupplierInput struct {
	Name         *string            `json:"name"`
	Address      *string            `json:"address"`
	Phone        *string            `json:"phone"`
	Email        *string            `json:"email" binding:"omitempty,email"`
	Translations []TranslationInput `json:"translations" binding:"omitempty,dive"`
}
