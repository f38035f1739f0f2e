package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rohanarya/tripkhata/internal/database"
	"github.com/rohanarya/tripkhata/internal/models"
)

func setupParamsTest(t *testing.T) (*ParamsRepository, context.Context) {
	t.Helper()

	pool := database.TestDB(t)
	ctx := context.Background()

	err := database.RunMigrations(ctx, pool)
	require.NoError(t, err)
	database.CleanupTables(t, pool)

	ownerRepo := NewOwnerRepository(pool)
	err = ownerRepo.Create(ctx, &models.Owner{ID: "rohan", PasswordHash: "hash"})
	require.NoError(t, err)

	return NewParamsRepository(pool), ctx
}

func TestParamsRepository_GetDefaults(t *testing.T) {
	repo, ctx := setupParamsTest(t)

	t.Run("owner who never saved gets zero defaults, not an error", func(t *testing.T) {
		params, err := repo.Get(ctx, "rohan")
		require.NoError(t, err)
		require.Equal(t, models.FixedParameters{}, params)
	})

	t.Run("unknown owner also gets defaults", func(t *testing.T) {
		params, err := repo.Get(ctx, "nobody")
		require.NoError(t, err)
		require.Equal(t, models.FixedParameters{}, params)
	})
}

func TestParamsRepository_SetAndGet(t *testing.T) {
	repo, ctx := setupParamsTest(t)

	saved := models.FixedParameters{
		TotalBudget:      30000,
		PlatinumTicket:   22500,
		PendingPlatinum:  11500,
		FlightTotal:      22500,
		MyFlightShare:    11250,
		Stay:             2000,
		ExpectedIncoming: 11250,
		BaseSavings:      50000,
	}

	t.Run("round-trips all eight fields", func(t *testing.T) {
		err := repo.Set(ctx, "rohan", saved)
		require.NoError(t, err)

		got, err := repo.Get(ctx, "rohan")
		require.NoError(t, err)
		require.Equal(t, saved, got)
	})

	t.Run("set is a full replace", func(t *testing.T) {
		err := repo.Set(ctx, "rohan", models.FixedParameters{TotalBudget: 1})
		require.NoError(t, err)

		got, err := repo.Get(ctx, "rohan")
		require.NoError(t, err)
		require.Equal(t, models.FixedParameters{TotalBudget: 1}, got)
	})

	t.Run("accepts negative values unchanged", func(t *testing.T) {
		negative := models.FixedParameters{TotalBudget: -500, BaseSavings: -1}
		err := repo.Set(ctx, "rohan", negative)
		require.NoError(t, err)

		got, err := repo.Get(ctx, "rohan")
		require.NoError(t, err)
		require.Equal(t, negative, got)
	})
}
