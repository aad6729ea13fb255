package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/domain/repositories"
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
)

// BrandUsecase handles brand catalog logic
type BrandUsecase struct {
	brandRepo repositories.BrandRepository
	uow       repositories.UnitOfWork
}

// NewBrandUsecase creates a new brand usecase
func NewBrandUsecase(brandRepo repositories.BrandRepository, uow repositories.UnitOfWork) *BrandUsecase {
	return &BrandUsecase{brandRepo: brandRepo, uow: uow}
}

func translationsFromInput(inputs []entities.TranslationInput) []entities.Translation {
	rows := make([]entities.Translation, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, entities.Translation{
			LanguageID:  i18n.Resolve(in.Language),
			Name:        in.Name,
			Description: in.Description,
		})
	}
	return rows
}

// Create creates a brand; the slug must be free
func (u *BrandUsecase) Create(ctx context.Context, input *entities.CreateBrandInput, lang string) (*entities.Brand, error) {
	if _, err := u.brandRepo.GetBySlug(ctx, input.Slug); err == nil {
		return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySlugAlreadyExists, map[string]string{"slug": input.Slug}))
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	brand := &entities.Brand{
		Slug:         input.Slug,
		Translations: translationsFromInput(input.Translations),
	}
	if input.Image != "" {
		brand.Image = null.StringFrom(input.Image)
	}

	if err := u.brandRepo.Create(ctx, brand); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySlugAlreadyExists, map[string]string{"slug": input.Slug}))
		}
		return nil, domainerrors.InternalError(err)
	}
	return brand, nil
}

// Get returns one brand with all its translations
func (u *BrandUsecase) Get(ctx context.Context, id uuid.UUID, lang string) (*entities.Brand, error) {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeyBrandNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}
	return brand, nil
}

// List returns all brands
func (u *BrandUsecase) List(ctx context.Context) ([]*entities.Brand, error) {
	brands, err := u.brandRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return brands, nil
}

// Update applies the provided fields; a non-empty translation list replaces
// the whole set atomically
func (u *BrandUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBrandInput, lang string) (*entities.Brand, error) {
	brand, err := u.Get(ctx, id, lang)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != brand.Slug {
		if _, err := u.brandRepo.GetBySlug(ctx, *input.Slug); err == nil {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySlugAlreadyExists, map[string]string{"slug": *input.Slug}))
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(err)
		}
		brand.Slug = *input.Slug
	}
	if input.Image != nil {
		brand.Image = null.StringFrom(*input.Image)
	}

	replaceTranslations := len(input.Translations) > 0
	if replaceTranslations {
		brand.Translations = translationsFromInput(input.Translations)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.brandRepo.Update(txCtx, brand, replaceTranslations)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySlugAlreadyExists, map[string]string{"slug": brand.Slug}))
		}
		return nil, domainerrors.InternalError(err)
	}
	return u.Get(ctx, id, lang)
}

// Delete removes a brand
func (u *BrandUsecase) Delete(ctx context.Context, id uuid.UUID, lang string) error {
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.brandRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeyBrandNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}
