package postgres

import (
	"context"
	"fmt"

	"confidential-points-exchange/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BrandRepo implements ports.BrandRepository.
type BrandRepo struct {
	pool Pool
}

// NewBrandRepo creates a new BrandRepo.
func NewBrandRepo(pool Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

// Insert appends a brand to the registry within a transaction.
func (r *BrandRepo) Insert(ctx context.Context, tx pgx.Tx, brand *domain.Brand) error {
	query := `INSERT INTO brands (id, position, created_at, registrar)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, brand.ID, brand.Position, brand.CreatedAt, brand.Registrar)
	if err != nil {
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// Exists reports whether a brand identifier is registered.
func (r *BrandRepo) Exists(ctx context.Context, brandID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM brands WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, brandID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check brand exists: %w", err)
	}
	return exists, nil
}

// List returns all brands in insertion order.
func (r *BrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	query := `SELECT id, position, created_at, registrar FROM brands ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Position, &b.CreatedAt, &b.Registrar); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brands: %w", err)
	}
	return brands, nil
}

// NextPosition returns the position the next registered brand will take.
// This MUST be called within a transaction so concurrent registrations
// serialize against the same counter.
func (r *BrandRepo) NextPosition(ctx context.Context, tx pgx.Tx) (int64, error) {
	query := `SELECT COALESCE(MAX(position), -1) + 1 FROM brands`

	var position int64
	if err := tx.QueryRow(ctx, query).Scan(&position); err != nil {
		return 0, fmt.Errorf("next brand position: %w", err)
	}
	return position, nil
}
