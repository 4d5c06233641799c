package postgres

import (
	"context"
	"errors"
	"fmt"

	"confidential-points-exchange/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RateRepo implements ports.RateRepository. The ordered pair (from_brand,
// to_brand) is the primary key: two separate columns, never a concatenated
// string, so "a|b->c" and "a->b|c" cannot collide.
type RateRepo struct {
	pool Pool
}

// NewRateRepo creates a new RateRepo.
func NewRateRepo(pool Pool) *RateRepo {
	return &RateRepo{pool: pool}
}

// Upsert overwrites any prior rate for the exact ordered pair.
func (r *RateRepo) Upsert(ctx context.Context, tx pgx.Tx, rate *domain.ExchangeRate) error {
	query := `INSERT INTO exchange_rates (from_brand, to_brand, rate, rate_mirror, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (from_brand, to_brand)
		DO UPDATE SET rate = EXCLUDED.rate, rate_mirror = EXCLUDED.rate_mirror, updated_at = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query,
		rate.Pair.From, rate.Pair.To, rate.Rate.String(), rate.RateMirror, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert rate: %w", err)
	}
	return nil
}

// Get fetches the rate for an ordered pair (non-locking read).
func (r *RateRepo) Get(ctx context.Context, pair domain.BrandPair) (*domain.ExchangeRate, error) {
	query := `SELECT from_brand, to_brand, rate, rate_mirror, updated_at
		FROM exchange_rates WHERE from_brand = $1 AND to_brand = $2`

	return scanRate(r.pool.QueryRow(ctx, query, pair.From, pair.To))
}

// GetInTx fetches the rate inside a ledger transaction so conversions observe
// a consistent snapshot.
func (r *RateRepo) GetInTx(ctx context.Context, tx pgx.Tx, pair domain.BrandPair) (*domain.ExchangeRate, error) {
	query := `SELECT from_brand, to_brand, rate, rate_mirror, updated_at
		FROM exchange_rates WHERE from_brand = $1 AND to_brand = $2`

	return scanRate(tx.QueryRow(ctx, query, pair.From, pair.To))
}

func scanRate(row pgx.Row) (*domain.ExchangeRate, error) {
	rate := &domain.ExchangeRate{}
	var cipher string
	err := row.Scan(&rate.Pair.From, &rate.Pair.To, &cipher, &rate.RateMirror, &rate.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan rate: %w", err)
	}
	rate.Rate = domain.Ciphertext(cipher)
	return rate, nil
}
