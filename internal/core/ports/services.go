package ports

import (
	"context"
	"time"

	"confidential-points-exchange/internal/core/domain"

	"github.com/google/uuid"
)

// ConfidentialEngine is the confidential-computation provider behind the
// ledger's ciphertext capability. The ledger only ever combines handles via
// these operations; it never observes plaintext.
type ConfidentialEngine interface {
	// Encode lifts a public plaintext value into the confidential domain.
	Encode(value int64) (domain.Ciphertext, error)
	Add(a, b domain.Ciphertext) (domain.Ciphertext, error)
	Sub(a, b domain.Ciphertext) (domain.Ciphertext, error)
	Mul(a, b domain.Ciphertext) (domain.Ciphertext, error)
	// VerifyInput checks the attestation attached to an externally supplied
	// ciphertext. Unattested ciphertexts must never enter arithmetic.
	VerifyInput(ct domain.Ciphertext, attestation []byte) bool
}

// ProofVerifier validates a decryption proof binding the record's handles,
// the claimed cleartext values and this deployment's identity. Pluggable so
// tests can substitute a trivial accept/reject stub for the real verifier.
type ProofVerifier interface {
	Verify(recordID uuid.UUID, handles []domain.Ciphertext, values []int64, proof []byte) bool
}

// OracleDispatcher hands a pending decryption record to the external
// decryption process. Dispatch is off-ledger and asynchronous: failures are
// retried in the background and never fail the ledger operation.
type OracleDispatcher interface {
	Dispatch(ctx context.Context, record *domain.DecryptionRecord) error
}

// VerifiedValueCache is the fast-path store for cleartext values of records
// that already reached their terminal state.
type VerifiedValueCache interface {
	// Get returns (nil, nil) on cache miss.
	Get(ctx context.Context, recordID uuid.UUID) ([]int64, error)
	Set(ctx context.Context, recordID uuid.UUID, values []int64, ttl time.Duration) error
}

// HashService handles participant credential hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles session token operations.
type TokenService interface {
	Generate(participantID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	ParticipantID uuid.UUID
}

// --- Service Ports (Business Logic) ---

// AccessService gates registry and rate mutation to the single owner role.
type AccessService interface {
	// Bootstrap installs the configured owner identity if none is persisted.
	Bootstrap(ctx context.Context, ownerID uuid.UUID) error
	Owner(ctx context.Context) (uuid.UUID, error)
	// RequireOwner fails with Unauthorized unless the caller is the owner.
	RequireOwner(ctx context.Context, callerID uuid.UUID) error
	TransferOwnership(ctx context.Context, callerID, newOwnerID uuid.UUID) error
}

// RegistryService is the brand registry plus rate table surface.
type RegistryService interface {
	RegisterBrand(ctx context.Context, callerID uuid.UUID, brandID string) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	SetRate(ctx context.Context, callerID uuid.UUID, req SetRateRequest) (*domain.ExchangeRate, error)
	GetRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error)
}

// SetRateRequest holds validated input for rate registration.
type SetRateRequest struct {
	FromBrand   string
	ToBrand     string
	Rate        domain.Ciphertext
	Attestation []byte
	RateMirror  int64
}

// AccountService owns account lifecycle and mirror maintenance.
type AccountService interface {
	Create(ctx context.Context, req CreateAccountRequest) (*domain.Account, error)
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error)
	Deactivate(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error)
	UpdateMirror(ctx context.Context, ownerID uuid.UUID, mirror int64) (*domain.Account, error)
}

// CreateAccountRequest holds validated input for account creation.
type CreateAccountRequest struct {
	OwnerID       uuid.UUID
	Initial       domain.Ciphertext
	Attestation   []byte
	InitialMirror int64
}

// ConversionService applies homomorphic arithmetic to move value between
// brands inside an account's confidential balance.
type ConversionService interface {
	Convert(ctx context.Context, req ConvertRequest) (*domain.Account, error)
}

// ConvertRequest holds validated input for a conversion.
type ConvertRequest struct {
	OwnerID   uuid.UUID
	FromBrand string
	ToBrand   string
	Amount    int64
}

// OracleService orchestrates the request -> external decrypt -> proof ->
// verification -> permanent-result cycle.
type OracleService interface {
	RequestDecryption(ctx context.Context, requesterID uuid.UUID, handles []domain.Ciphertext) (*domain.DecryptionRecord, error)
	VerifyDecryption(ctx context.Context, recordID uuid.UUID, values []int64, proof []byte) (*VerifyDecryptionResult, error)
	GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.DecryptionRecord, error)
}

// VerifyDecryptionResult reports the verification outcome. AlreadyVerified is
// true when the call short-circuited on a terminal record: the stored values
// are returned unchanged and no state transition happened.
type VerifyDecryptionResult struct {
	Record          *domain.DecryptionRecord
	AlreadyVerified bool
}

// IdentityService defines participant registration and login.
type IdentityService interface {
	Register(ctx context.Context, username, password string) (*domain.Participant, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// EventService exposes the observable append-only event log.
type EventService interface {
	List(ctx context.Context, limit int) ([]domain.LedgerEvent, error)
}
