package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
)

func TestBrandRepository_CreateGetUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	createBrandTables(t, db)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	b := &entities.Brand{
		Slug:  "volvo",
		Image: null.StringFrom("https://cdn.example.com/volvo.png"),
		Translations: []entities.Translation{
			{LanguageID: "fr", Name: "Volvo", Description: "Camions Volvo"},
			{LanguageID: "en", Name: "Volvo", Description: "Volvo trucks"},
		},
	}
	require.NoError(t, repo.Create(ctx, b))

	byID, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "volvo", byID.Slug)
	require.Len(t, byID.Translations, 2)

	bySlug, err := repo.GetBySlug(ctx, "volvo")
	require.NoError(t, err)
	require.Equal(t, b.ID, bySlug.ID)

	// Full replace: two rows in, one row out
	byID.Slug = "volvo-trucks"
	byID.Translations = []entities.Translation{
		{LanguageID: "it", Name: "Volvo", Description: "Camion Volvo"},
	}
	require.NoError(t, repo.Update(ctx, byID, true))

	updated, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "volvo-trucks", updated.Slug)
	require.Len(t, updated.Translations, 1)
	require.Equal(t, "it", updated.Translations[0].LanguageID)

	// Slug-only update keeps existing translations
	updated.Slug = "volvo-group"
	require.NoError(t, repo.Update(ctx, updated, false))
	kept, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, kept.Translations, 1)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.GetByID(ctx, b.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	var orphans int64
	require.NoError(t, db.Table("brand_translations").Count(&orphans).Error)
	require.Zero(t, orphans)
}

func TestBrandRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createBrandTables(t, db)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Brand{ID: uuid.New(), Slug: "x"}, true)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Delete(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBrandRepository_DuplicateSlugIsConflict(t *testing.T) {
	db := newTestDB(t)
	createBrandTables(t, db)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Brand{Slug: "volvo"}))

	// the unique index decides, not the usecase pre-check
	err := repo.Create(ctx, &entities.Brand{Slug: "volvo"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	other := &entities.Brand{Slug: "scania"}
	require.NoError(t, repo.Create(ctx, other))
	other.Slug = "volvo"
	require.ErrorIs(t, repo.Update(ctx, other, false), domainerrors.ErrAlreadyExists)
}

func TestCategoryRepository_FullReplaceTranslations(t *testing.T) {
	db := newTestDB(t)
	createCategoryTables(t, db)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	c := &entities.Category{
		Slug: "tractor-units",
		Translations: []entities.Translation{
			{LanguageID: "fr", Name: "Tracteurs routiers"},
			{LanguageID: "en", Name: "Tractor units"},
		},
	}
	require.NoError(t, repo.Create(ctx, c))

	c.Translations = []entities.Translation{
		{LanguageID: "fr", Name: "Tracteurs"},
	}
	require.NoError(t, repo.Update(ctx, c, true))

	got, err := repo.GetBySlug(ctx, "tractor-units")
	require.NoError(t, err)
	require.Len(t, got.Translations, 1)
	require.Equal(t, "Tracteurs", got.Translations[0].Name)
}

func TestSupplierRepository_CreateGetUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	createSupplierTables(t, db)
	repo := NewSupplierRepository(db)
	ctx := context.Background()

	s := &entities.Supplier{
		Name:    "TransAfrica Logistics",
		Address: null.StringFrom("Douala"),
		Email:   null.StringFrom("contact@transafrica.example"),
		Translations: []entities.Translation{
			{LanguageID: "fr", Name: "TransAfrica"},
		},
	}
	require.NoError(t, repo.Create(ctx, s))

	byName, err := repo.GetByName(ctx, "TransAfrica Logistics")
	require.NoError(t, err)
	require.Equal(t, s.ID, byName.ID)
	require.Len(t, byName.Translations, 1)

	byName.Phone = null.StringFrom("+237650000002")
	require.NoError(t, repo.Update(ctx, byName, false))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, "+237650000002", got.Phone.String)

	require.NoError(t, repo.Delete(ctx, s.ID))
	_, err = repo.GetByID(ctx, s.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestLanguageRepository_UpsertAndList(t *testing.T) {
	db := newTestDB(t)
	createLanguageTable(t, db)
	repo := NewLanguageRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entities.Language{ID: "fr", Name: "Francais"}))
	require.NoError(t, repo.Upsert(ctx, &entities.Language{ID: "fr", Name: "French"}))
	require.NoError(t, repo.Upsert(ctx, &entities.Language{ID: "en", Name: "English"}))

	fr, err := repo.GetByID(ctx, "fr")
	require.NoError(t, err)
	require.Equal(t, "French", fr.Name)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	_, err = repo.GetByID(ctx, "de")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
