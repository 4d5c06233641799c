package postgres

import (
	"context"
	"errors"
	"fmt"

	"confidential-points-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `owner_id, balance, balance_mirror, active, created_at, updated_at`

// Create inserts a new account within a transaction.
func (r *AccountRepo) Create(ctx context.Context, tx pgx.Tx, account *domain.Account) error {
	query := `INSERT INTO accounts (owner_id, balance, balance_mirror, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		account.OwnerID, account.Balance.String(), account.BalanceMirror,
		account.Active, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByOwner fetches an account by owner (non-locking read).
func (r *AccountRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1`

	return scanAccount(r.pool.QueryRow(ctx, query, ownerID))
}

// GetByOwnerForUpdate fetches an account with pessimistic locking.
// This MUST be called within a transaction.
func (r *AccountRepo) GetByOwnerForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1 FOR UPDATE`

	return scanAccount(tx.QueryRow(ctx, query, ownerID))
}

// UpdateBalance replaces the confidential balance within a transaction.
func (r *AccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, balance domain.Ciphertext) error {
	query := `UPDATE accounts SET balance = $1, updated_at = NOW() WHERE owner_id = $2`

	tag, err := tx.Exec(ctx, query, balance.String(), ownerID)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", ownerID)
	}
	return nil
}

// UpdateMirror replaces the advisory plaintext mirror within a transaction.
func (r *AccountRepo) UpdateMirror(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, mirror int64) error {
	query := `UPDATE accounts SET balance_mirror = $1, updated_at = NOW() WHERE owner_id = $2`

	tag, err := tx.Exec(ctx, query, mirror, ownerID)
	if err != nil {
		return fmt.Errorf("update account mirror: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", ownerID)
	}
	return nil
}

// SetActive flips the activation flag within a transaction.
func (r *AccountRepo) SetActive(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, active bool) error {
	query := `UPDATE accounts SET active = $1, updated_at = NOW() WHERE owner_id = $2`

	tag, err := tx.Exec(ctx, query, active, ownerID)
	if err != nil {
		return fmt.Errorf("set account active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", ownerID)
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	var balance string
	err := row.Scan(&a.OwnerID, &balance, &a.BalanceMirror, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	a.Balance = domain.Ciphertext(balance)
	return a, nil
}
