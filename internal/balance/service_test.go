package balance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rohanarya/tripkhata/internal/models"
)

type fakeStore struct {
	params   models.FixedParameters
	expenses []models.Expense
	incomes  []models.Income

	paramsErr  error
	expenseErr error
	incomeErr  error
}

func (f *fakeStore) Get(_ context.Context, _ string) (models.FixedParameters, error) {
	return f.params, f.paramsErr
}

func (f *fakeStore) ListExpenses(_ context.Context, _ string) ([]models.Expense, error) {
	return f.expenses, f.expenseErr
}

func (f *fakeStore) ListIncomes(_ context.Context, _ string) ([]models.Income, error) {
	return f.incomes, f.incomeErr
}

func TestServiceSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("combines parameters and ledger", func(t *testing.T) {
		store := &fakeStore{
			params: sampleParams(),
			expenses: []models.Expense{
				{EntryID: "e1", Amount: 500, Account: models.AccountTrip},
			},
		}
		svc := NewService(store, store)

		sum, err := svc.Summary(ctx, "rohan")
		require.NoError(t, err)
		require.EqualValues(t, 24750, sum.TripEffectiveSpent)
		require.EqualValues(t, 5000, sum.TripRemainingBalance)
	})

	t.Run("owner with no state gets all-zero defaults", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, store)

		sum, err := svc.Summary(ctx, "nobody")
		require.NoError(t, err)
		require.Zero(t, sum.TripRemainingBalance)
		require.True(t, sum.SafeDailySpend.IsZero())
		require.Zero(t, sum.TotalSavingsBalance)
	})

	t.Run("recomputes on every read", func(t *testing.T) {
		store := &fakeStore{params: sampleParams()}
		svc := NewService(store, store)

		first, err := svc.Summary(ctx, "rohan")
		require.NoError(t, err)

		store.expenses = append(store.expenses, models.Expense{
			EntryID: "e1", Amount: 1000, Account: models.AccountTrip,
		})

		second, err := svc.Summary(ctx, "rohan")
		require.NoError(t, err)
		require.Equal(t, first.TripRemainingBalance-1000, second.TripRemainingBalance)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		storeErr := errors.New("connection lost")

		for _, store := range []*fakeStore{
			{paramsErr: storeErr},
			{expenseErr: storeErr},
			{incomeErr: storeErr},
		} {
			svc := NewService(store, store)
			_, err := svc.Summary(ctx, "rohan")
			require.ErrorIs(t, err, storeErr)
		}
	})
}
