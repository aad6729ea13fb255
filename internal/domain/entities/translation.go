package entities

import "github.com/google/uuid"

// Language is a supported locale referenced by translation rows
type Language struct {
	ID   string `json:"id"` // "fr", "en", "it"
	Name string `json:"name"`
}

// Translation is one (language, localized fields) row attached to a catalog
// entity. A parent holds at most one per language; updates replace the whole
// set, they never merge.
type Translation struct {
	ID          uuid.UUID `json:"id"`
	LanguageID  string    `json:"language"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// TranslationInput is the inbound form of a translation row
type TranslationInput struct {
	Language    string `json:"language" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
