// Package repository implements Postgres persistence for owners, fixed
// parameters, and the ledger.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rohanarya/tripkhata/internal/database"
	"github.com/rohanarya/tripkhata/internal/models"
)

// OwnerRepository handles owner database operations.
type OwnerRepository struct {
	db database.PGXDB
}

// NewOwnerRepository creates a new OwnerRepository.
func NewOwnerRepository(db database.PGXDB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// Create inserts a new owner row.
func (r *OwnerRepository) Create(ctx context.Context, owner *models.Owner) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO owners (id, password_hash)
		VALUES ($1, $2)
		RETURNING created_at
	`, owner.ID, owner.PasswordHash).Scan(&owner.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("owner %q: %w", owner.ID, models.ErrDuplicateID)
		}
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

// GetByID retrieves an owner. Returns models.ErrNotFound for unknown ids.
func (r *OwnerRepository) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.QueryRow(ctx, `
		SELECT id, password_hash, created_at FROM owners WHERE id = $1
	`, id).Scan(&owner.ID, &owner.PasswordHash, &owner.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return &owner, nil
}
