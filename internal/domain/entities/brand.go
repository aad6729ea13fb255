package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Brand is a vehicle manufacturer identified by a unique slug
type Brand struct {
	ID           uuid.UUID     `json:"id"`
	Slug         string        `json:"slug"`
	Image        null.String   `json:"image,omitempty"`
	Translations []Translation `json:"translations"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CreateBrandInput carries the brand creation fields
type CreateBrandInput struct {
	Slug         string             `json:"slug" binding:"required"`
	Image        string             `json:"image"`
	Translations []TranslationInput `json:"translations" binding:"required,min=1,dive"`
}

// UpdateBrandInput carries the brand update fields; nil fields are left
// untouched, a non-empty translation list replaces the whole set
type UpdateBrandInput struct {
	Slug         *string            `json:"slug"`
	Image        *string            `json:"image"`
	Translations []TranslationInput `json:"translations" binding:"omitempty,dive"`
}
