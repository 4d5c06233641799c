package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"confidential-points-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DecryptionRepo implements ports.DecryptionRepository. Handles and cleartext
// values are stored as arrays; values stays NULL until verification.
type DecryptionRepo struct {
	pool Pool
}

// NewDecryptionRepo creates a new DecryptionRepo.
func NewDecryptionRepo(pool Pool) *DecryptionRepo {
	return &DecryptionRepo{pool: pool}
}

const decryptionColumns = `id, requester_id, handles, status, cleartext_values, created_at, verified_at`

// Create inserts a pending decryption record.
func (r *DecryptionRepo) Create(ctx context.Context, record *domain.DecryptionRecord) error {
	query := `INSERT INTO decryption_records (id, requester_id, handles, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		record.ID, record.RequesterID, handleStrings(record.Handles),
		string(record.Status), record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert decryption record: %w", err)
	}
	return nil
}

// GetByID fetches a record (non-locking read).
func (r *DecryptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DecryptionRecord, error) {
	query := `SELECT ` + decryptionColumns + ` FROM decryption_records WHERE id = $1`

	return scanDecryptionRecord(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a record with pessimistic locking.
// This MUST be called within a transaction.
func (r *DecryptionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.DecryptionRecord, error) {
	query := `SELECT ` + decryptionColumns + ` FROM decryption_records WHERE id = $1 FOR UPDATE`

	return scanDecryptionRecord(tx.QueryRow(ctx, query, id))
}

// MarkVerified stores the cleartext values and flips the record to its
// terminal state. The status guard makes a double transition impossible even
// if a caller slips past the locked read.
func (r *DecryptionRepo) MarkVerified(ctx context.Context, tx pgx.Tx, id uuid.UUID, values []int64, verifiedAt time.Time) error {
	query := `UPDATE decryption_records
		SET status = $1, cleartext_values = $2, verified_at = $3
		WHERE id = $4 AND status = $5`

	tag, err := tx.Exec(ctx, query,
		string(domain.DecryptionStatusVerified), values, verifiedAt,
		id, string(domain.DecryptionStatusPending),
	)
	if err != nil {
		return fmt.Errorf("mark decryption verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("decryption record not pending: %s", id)
	}
	return nil
}

func scanDecryptionRecord(row pgx.Row) (*domain.DecryptionRecord, error) {
	rec := &domain.DecryptionRecord{}
	var handles []string
	var status string
	var values []int64
	err := row.Scan(&rec.ID, &rec.RequesterID, &handles, &status, &values, &rec.CreatedAt, &rec.VerifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan decryption record: %w", err)
	}
	rec.Handles = make([]domain.Ciphertext, len(handles))
	for i, h := range handles {
		rec.Handles[i] = domain.Ciphertext(h)
	}
	rec.Status = domain.DecryptionStatus(status)
	rec.Values = values
	return rec, nil
}

func handleStrings(handles []domain.Ciphertext) []string {
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = h.String()
	}
	return out
}
