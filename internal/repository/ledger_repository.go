package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rohanarya/tripkhata/internal/database"
	"github.com/rohanarya/tripkhata/internal/models"
)

// Ledger entry kinds as stored in the ledger_ids registry.
const (
	kindExpense = "expense"
	kindIncome  = "income"
	kindPlace   = "place"
)

// LedgerRepository handles the append-only ledger. Entries are never updated
// or deleted; the only writes are appends and the only reads are full,
// newest-first listings per owner.
type LedgerRepository struct {
	db database.PGXDB
	tx database.TxBeginner
}

// NewLedgerRepository creates a new LedgerRepository. The pool is passed twice
// because appends need transactions while listings only need queries.
func NewLedgerRepository(db database.PGXDB, tx database.TxBeginner) *LedgerRepository {
	return &LedgerRepository{db: db, tx: tx}
}

// claimEntryID reserves the caller-supplied entry id for an owner. The
// registry spans all entry kinds, so an id used for an expense cannot be
// reused for an income or a place.
func claimEntryID(ctx context.Context, db database.PGXDB, ownerID, entryID, kind string) error {
	_, err := db.Exec(ctx, `
		INSERT INTO ledger_ids (owner_id, entry_id, kind) VALUES ($1, $2, $3)
	`, ownerID, entryID, kind)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("entry %q: %w", entryID, models.ErrDuplicateID)
		}
		return fmt.Errorf("failed to claim entry id: %w", err)
	}
	return nil
}

// AppendExpense adds a new expense entry.
func (r *LedgerRepository) AppendExpense(ctx context.Context, expense *models.Expense) error {
	tx, err := r.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin append: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := claimEntryID(ctx, tx, expense.OwnerID, expense.EntryID, kindExpense); err != nil {
		return err
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO expenses (entry_id, owner_id, title, amount, category, account, spent_on, spent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, expense.EntryID, expense.OwnerID, expense.Title, expense.Amount,
		expense.Category, expense.Account, expense.Date, expense.Time,
	).Scan(&expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append expense: %w", err)
	}
	return tx.Commit(ctx)
}

// AppendIncome adds a new income entry.
func (r *LedgerRepository) AppendIncome(ctx context.Context, income *models.Income) error {
	tx, err := r.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin append: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := claimEntryID(ctx, tx, income.OwnerID, income.EntryID, kindIncome); err != nil {
		return err
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO incomes (entry_id, owner_id, title, amount, category, account, received_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, income.EntryID, income.OwnerID, income.Title, income.Amount,
		income.Category, income.Account, income.Date,
	).Scan(&income.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append income: %w", err)
	}
	return tx.Commit(ctx)
}

// AppendPlace adds a new place entry.
func (r *LedgerRepository) AppendPlace(ctx context.Context, place *models.Place) error {
	tx, err := r.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin append: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := claimEntryID(ctx, tx, place.OwnerID, place.EntryID, kindPlace); err != nil {
		return err
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO places (entry_id, owner_id, title, category)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, place.EntryID, place.OwnerID, place.Title, place.Category,
	).Scan(&place.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append place: %w", err)
	}
	return tx.Commit(ctx)
}

// ListExpenses retrieves all expenses for an owner, most recent first.
func (r *LedgerRepository) ListExpenses(ctx context.Context, ownerID string) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx, `
		SELECT entry_id, owner_id, title, amount, category, account,
		       to_char(spent_on, 'YYYY-MM-DD'), spent_at, created_at
		FROM expenses
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.EntryID, &exp.OwnerID, &exp.Title, &exp.Amount,
			&exp.Category, &exp.Account, &exp.Date, &exp.Time, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

// ListIncomes retrieves all incomes for an owner, most recent first.
func (r *LedgerRepository) ListIncomes(ctx context.Context, ownerID string) ([]models.Income, error) {
	rows, err := r.db.Query(ctx, `
		SELECT entry_id, owner_id, title, amount, category, account,
		       to_char(received_on, 'YYYY-MM-DD'), created_at
		FROM incomes
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var inc models.Income
		if err := rows.Scan(&inc.EntryID, &inc.OwnerID, &inc.Title, &inc.Amount,
			&inc.Category, &inc.Account, &inc.Date, &inc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		incomes = append(incomes, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incomes: %w", err)
	}
	return incomes, nil
}

// ListPlaces retrieves all places for an owner, most recent first.
func (r *LedgerRepository) ListPlaces(ctx context.Context, ownerID string) ([]models.Place, error) {
	rows, err := r.db.Query(ctx, `
		SELECT entry_id, owner_id, title, category, created_at
		FROM places
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		var place models.Place
		if err := rows.Scan(&place.EntryID, &place.OwnerID, &place.Title,
			&place.Category, &place.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating places: %w", err)
	}
	return places, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
