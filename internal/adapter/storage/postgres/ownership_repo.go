package postgres

import (
	"context"
	"errors"
	"fmt"

	"confidential-points-exchange/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OwnershipRepo implements ports.OwnershipRepository. The table holds at most
// one row, pinned by a constant key.
type OwnershipRepo struct {
	pool Pool
}

// NewOwnershipRepo creates a new OwnershipRepo.
func NewOwnershipRepo(pool Pool) *OwnershipRepo {
	return &OwnershipRepo{pool: pool}
}

// Get fetches the ownership row (non-locking read).
func (r *OwnershipRepo) Get(ctx context.Context) (*domain.Ownership, error) {
	query := `SELECT owner_id, updated_at FROM ownership WHERE singleton = TRUE`

	return scanOwnership(r.pool.QueryRow(ctx, query))
}

// GetForUpdate fetches the ownership row with pessimistic locking.
// This MUST be called within a transaction.
func (r *OwnershipRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.Ownership, error) {
	query := `SELECT owner_id, updated_at FROM ownership WHERE singleton = TRUE FOR UPDATE`

	return scanOwnership(tx.QueryRow(ctx, query))
}

// Set writes the ownership row, creating it on first bootstrap.
func (r *OwnershipRepo) Set(ctx context.Context, tx pgx.Tx, ownership *domain.Ownership) error {
	query := `INSERT INTO ownership (singleton, owner_id, updated_at)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton)
		DO UPDATE SET owner_id = EXCLUDED.owner_id, updated_at = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query, ownership.OwnerID, ownership.UpdatedAt)
	if err != nil {
		return fmt.Errorf("set ownership: %w", err)
	}
	return nil
}

func scanOwnership(row pgx.Row) (*domain.Ownership, error) {
	o := &domain.Ownership{}
	err := row.Scan(&o.OwnerID, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan ownership: %w", err)
	}
	return o, nil
}
