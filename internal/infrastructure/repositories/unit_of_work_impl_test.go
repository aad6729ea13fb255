package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
)

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createBrandTables(t, db)
	uow := NewUnitOfWork(db)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	// Committed work is visible afterwards
	err := uow.Do(ctx, func(txCtx context.Context) error {
		return repo.Create(txCtx, &entities.Brand{
			Slug:         "scania",
			Translations: []entities.Translation{{LanguageID: "fr", Name: "Scania"}},
		})
	})
	require.NoError(t, err)

	got, err := repo.GetBySlug(ctx, "scania")
	require.NoError(t, err)
	require.Len(t, got.Translations, 1)

	// A failing fn rolls everything back
	boom := errors.New("boom")
	err = uow.Do(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, &entities.Brand{Slug: "man"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.GetBySlug(ctx, "man")
	require.Error(t, err)
}

func TestUnitOfWork_NestedDoReusesTransaction(t *testing.T) {
	db := newTestDB(t)
	createBrandTables(t, db)
	uow := NewUnitOfWork(db)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	err := uow.Do(ctx, func(outer context.Context) error {
		return uow.Do(outer, func(inner context.Context) error {
			return repo.Create(inner, &entities.Brand{Slug: "daf"})
		})
	})
	require.NoError(t, err)

	_, err = repo.GetBySlug(ctx, "daf")
	require.NoError(t, err)
}
