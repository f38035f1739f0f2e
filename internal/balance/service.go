package balance

import (
	"context"
	"fmt"

	"github.com/rohanarya/tripkhata/internal/models"
)

// ParamsGetter supplies the latest fixed-parameter snapshot for an owner.
type ParamsGetter interface {
	Get(ctx context.Context, ownerID string) (models.FixedParameters, error)
}

// LedgerReader supplies the full ledger for an owner.
type LedgerReader interface {
	ListExpenses(ctx context.Context, ownerID string) ([]models.Expense, error)
	ListIncomes(ctx context.Context, ownerID string) ([]models.Income, error)
}

// Service recomputes the derived figures from persisted state on every read.
// There is deliberately no cache: the ledger stays small and a fresh
// computation is cheaper than invalidation logic.
type Service struct {
	params ParamsGetter
	ledger LedgerReader
}

// NewService creates a balance Service over the given stores.
func NewService(params ParamsGetter, ledger LedgerReader) *Service {
	return &Service{params: params, ledger: ledger}
}

// Summary loads the owner's parameters and ledger and derives all figures.
func (s *Service) Summary(ctx context.Context, ownerID string) (Summary, error) {
	params, err := s.params.Get(ctx, ownerID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load parameters: %w", err)
	}
	expenses, err := s.ledger.ListExpenses(ctx, ownerID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	incomes, err := s.ledger.ListIncomes(ctx, ownerID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load incomes: %w", err)
	}
	return Compute(params, expenses, incomes), nil
}
