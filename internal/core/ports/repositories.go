package ports

import (
	"context"
	"time"

	"confidential-points-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BrandRepository defines persistence for the append-only brand registry.
type BrandRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, brand *domain.Brand) error
	Exists(ctx context.Context, brandID string) (bool, error)
	// List returns all brands in insertion order. Pure read, restartable.
	List(ctx context.Context) ([]domain.Brand, error)
	// NextPosition returns the position the next registered brand will take.
	NextPosition(ctx context.Context, tx pgx.Tx) (int64, error)
}

// RateRepository defines persistence for the per-pair rate table.
type RateRepository interface {
	// Upsert overwrites any prior rate for the exact ordered pair.
	Upsert(ctx context.Context, tx pgx.Tx, rate *domain.ExchangeRate) error
	// Get returns (nil, nil) when no entry exists for the pair.
	Get(ctx context.Context, pair domain.BrandPair) (*domain.ExchangeRate, error)
	// GetInTx reads the rate inside a ledger transaction so conversions
	// observe a consistent snapshot.
	GetInTx(ctx context.Context, tx pgx.Tx, pair domain.BrandPair) (*domain.ExchangeRate, error)
}

// AccountRepository defines persistence for account records.
// Methods accepting pgx.Tx run inside transaction blocks for pessimistic locking.
type AccountRepository interface {
	Create(ctx context.Context, tx pgx.Tx, account *domain.Account) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error)
	GetByOwnerForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, balance domain.Ciphertext) error
	UpdateMirror(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, mirror int64) error
	SetActive(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, active bool) error
}

// DecryptionRepository defines persistence for decryption records.
type DecryptionRepository interface {
	Create(ctx context.Context, record *domain.DecryptionRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DecryptionRecord, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.DecryptionRecord, error)
	// MarkVerified stores the cleartext values and flips the record to its
	// terminal state. It must never be called twice for the same record.
	MarkVerified(ctx context.Context, tx pgx.Tx, id uuid.UUID, values []int64, verifiedAt time.Time) error
}

// EventRepository defines the append-only ledger event log.
type EventRepository interface {
	Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error
	List(ctx context.Context, limit int) ([]domain.LedgerEvent, error)
}

// ParticipantRepository defines persistence for caller identities.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	GetByUsername(ctx context.Context, username string) (*domain.Participant, error)
}

// OwnershipRepository persists the single registry-owner role.
type OwnershipRepository interface {
	// Get returns (nil, nil) when ownership has not been bootstrapped yet.
	Get(ctx context.Context) (*domain.Ownership, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.Ownership, error)
	Set(ctx context.Context, tx pgx.Tx, ownership *domain.Ownership) error
}

// DBTransactor provides ledger transaction management. Every mutating
// operation runs inside one transaction: it either fully commits or fully
// aborts, so no partial writes survive a failed precondition.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
