package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Category groups vehicles under a unique slug
type Category struct {
	ID           uuid.UUID     `json:"id"`
	Slug         string        `json:"slug"`
	Image        null.String   `json:"image,omitempty"`
	Translations []Translation `json:"translations"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CreateCategoryInput carries the category creation fields
type CreateCategoryInput struct {
	Slug         string             `json:"slug" binding:"required"`
	Image        string             `json:"image"`
	Translations []TranslationInput `json:"translations" binding:"required,min=1,dive"`
}

// UpdateCategoryInput carries the category update fields
type UpdateCategoryInput struct {
	Slug         *string            `json:"slug"`
	Image        *string            `json:"image"`
	Translations []TranslationInput `json:"translations" binding:"omitempty,dive"`
}
