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

// CategoryUsecase handles category catalog logic
type CategoryUsecase struct {
	categoryRepo repositories.CategoryRepository
	uow          repositories.UnitOfWork
}

// NewCategoryUsecase creates a new category usecase
func NewCategoryUsecase(categoryRepo repositories.CategoryRepository, uow repositories.UnitOfWork) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, uow: uow}
}

// Create creates a category; the slug must be free
func (u *CategoryUsecase) Create(ctx context.Context, input *entities.CreateCategoryInput, lang string) (*entities.Category, error) {
	if _, err := u.categoryRepo.GetBySlug(ctx, input.Slug); err == nil {
		return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySlugAlreadyExists, map[string]string{"slug": input.Slug}))
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	category := &entities.Category{
		Slug:         input.Slug,
		Translations: translationsFromInput(input.Translations),
	}
	if input.Image != "" {
		category.Image = null.StringFrom(input.Image)
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySlugAlreadyExists, map[string]string{"slug": input.Slug}))
		}
		return nil, domainerrors.InternalError(err)
	}
	return category, nil
}

// Get returns one category with all its translations
func (u *CategoryUsecase) Get(ctx context.Context, id uuid.UUID, lang string) (*entities.Category, error) {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeyCategoryNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}
	return category, nil
}

// List returns all categories
func (u *CategoryUsecase) List(ctx context.Context) ([]*entities.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return categories, nil
}

// Update applies the provided fields; a non-empty translation list replaces
// the whole set atomically
func (u *CategoryUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCategoryInput, lang string) (*entities.Category, error) {
	category, err := u.Get(ctx, id, lang)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != category.Slug {
		if _, err := u.categoryRepo.GetBySlug(ctx, *input.Slug); err == nil {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySlugAlreadyExists, map[string]string{"slug": *input.Slug}))
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(err)
		}
		category.Slug = *input.Slug
	}
	if input.Image != nil {
		category.Image = null.StringFrom(*input.Image)
	}

	replaceTranslations := len(input.Translations) > 0
	if replaceTranslations {
		category.Translations = translationsFromInput(input.Translations)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.categoryRepo.Update(txCtx, category, replaceTranslations)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(i18n.T(lang, i18n.KeySlugAlreadyExists, map[string]string{"slug": category.Slug}))
		}
		return nil, domainerrors.InternalError(err)
	}
	return u.Get(ctx, id, lang)
}

// Delete removes a category
func (u *CategoryUsecase) Delete(ctx context.Context, id uuid.UUID, lang string) error {
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.categoryRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeyCategoryNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}
