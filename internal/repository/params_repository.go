package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rohanarya/tripkhata/internal/database"
	"github.com/rohanarya/tripkhata/internal/models"
)

// ParamsRepository handles fixed-parameter database operations. One row per
// owner, replaced whole on every save.
type ParamsRepository struct {
	db database.PGXDB
}

// NewParamsRepository creates a new ParamsRepository.
func NewParamsRepository(db database.PGXDB) *ParamsRepository {
	return &ParamsRepository{db: db}
}

// Get retrieves the fixed parameters for an owner. An owner who never saved
// parameters gets the zero-value defaults, not an error.
func (r *ParamsRepository) Get(ctx context.Context, ownerID string) (models.FixedParameters, error) {
	var p models.FixedParameters
	err := r.db.QueryRow(ctx, `
		SELECT total_budget, platinum_ticket, pending_platinum, flight_total,
		       my_flight_share, stay, expected_incoming, base_savings
		FROM fixed_parameters WHERE owner_id = $1
	`, ownerID).Scan(&p.TotalBudget, &p.PlatinumTicket, &p.PendingPlatinum, &p.FlightTotal,
		&p.MyFlightShare, &p.Stay, &p.ExpectedIncoming, &p.BaseSavings)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.FixedParameters{}, nil
	}
	if err != nil {
		return models.FixedParameters{}, fmt.Errorf("failed to get fixed parameters: %w", err)
	}
	return p, nil
}

// Set replaces all eight fields atomically for an owner. Any integer is
// accepted; no sign or range checks.
func (r *ParamsRepository) Set(ctx context.Context, ownerID string, p models.FixedParameters) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO fixed_parameters (owner_id, total_budget, platinum_ticket, pending_platinum,
			flight_total, my_flight_share, stay, expected_incoming, base_savings, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			total_budget = EXCLUDED.total_budget,
			platinum_ticket = EXCLUDED.platinum_ticket,
			pending_platinum = EXCLUDED.pending_platinum,
			flight_total = EXCLUDED.flight_total,
			my_flight_share = EXCLUDED.my_flight_share,
			stay = EXCLUDED.stay,
			expected_incoming = EXCLUDED.expected_incoming,
			base_savings = EXCLUDED.base_savings,
			updated_at = NOW()
	`, ownerID, p.TotalBudget, p.PlatinumTicket, p.PendingPlatinum, p.FlightTotal,
		p.MyFlightShare, p.Stay, p.ExpectedIncoming, p.BaseSavings)
	if err != nil {
		return fmt.Errorf("failed to set fixed parameters: %w", err)
	}
	return nil
}
