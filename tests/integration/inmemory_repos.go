package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"confidential-points-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Participant Repo ---

type inMemoryParticipantRepo struct {
	mu           sync.RWMutex
	participants map[uuid.UUID]*domain.Participant
}

func newInMemoryParticipantRepo() *inMemoryParticipantRepo {
	return &inMemoryParticipantRepo{participants: make(map[uuid.UUID]*domain.Participant)}
}

func (r *inMemoryParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.participants {
		if existing.Username == p.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.participants[p.ID] = p
	return nil
}

func (r *inMemoryParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.participants[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *inMemoryParticipantRepo) GetByUsername(ctx context.Context, username string) (*domain.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.participants {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

// --- In-Memory Ownership Repo ---

type inMemoryOwnershipRepo struct {
	mu        sync.RWMutex
	ownership *domain.Ownership
}

func newInMemoryOwnershipRepo() *inMemoryOwnershipRepo {
	return &inMemoryOwnershipRepo{}
}

func (r *inMemoryOwnershipRepo) Get(ctx context.Context) (*domain.Ownership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ownership, nil
}

func (r *inMemoryOwnershipRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.Ownership, error) {
	return r.Get(ctx)
}

func (r *inMemoryOwnershipRepo) Set(ctx context.Context, tx pgx.Tx, ownership *domain.Ownership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ownership = ownership
	return nil
}

// --- In-Memory Brand Repo ---

type inMemoryBrandRepo struct {
	mu     sync.RWMutex
	brands map[string]*domain.Brand
}

func newInMemoryBrandRepo() *inMemoryBrandRepo {
	return &inMemoryBrandRepo{brands: make(map[string]*domain.Brand)}
}

func (r *inMemoryBrandRepo) Insert(ctx context.Context, tx pgx.Tx, brand *domain.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.brands[brand.ID]; ok {
		return fmt.Errorf("brand already registered")
	}
	r.brands[brand.ID] = brand
	return nil
}

func (r *inMemoryBrandRepo) Exists(ctx context.Context, brandID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.brands[brandID]
	return ok, nil
}

func (r *inMemoryBrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *inMemoryBrandRepo) NextPosition(ctx context.Context, tx pgx.Tx) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.brands)), nil
}

// --- In-Memory Rate Repo ---

type inMemoryRateRepo struct {
	mu    sync.RWMutex
	rates map[domain.BrandPair]*domain.ExchangeRate
}

func newInMemoryRateRepo() *inMemoryRateRepo {
	return &inMemoryRateRepo{rates: make(map[domain.BrandPair]*domain.ExchangeRate)}
}

func (r *inMemoryRateRepo) Upsert(ctx context.Context, tx pgx.Tx, rate *domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates[rate.Pair] = rate
	return nil
}

func (r *inMemoryRateRepo) Get(ctx context.Context, pair domain.BrandPair) (*domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rate, ok := r.rates[pair]
	if !ok {
		return nil, nil
	}
	return rate, nil
}

func (r *inMemoryRateRepo) GetInTx(ctx context.Context, tx pgx.Tx, pair domain.BrandPair) (*domain.ExchangeRate, error) {
	return r.Get(ctx, pair)
}

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, tx pgx.Tx, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.OwnerID]; ok {
		return fmt.Errorf("account already exists")
	}
	r.accounts[account.OwnerID] = account
	return nil
}

func (r *inMemoryAccountRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[ownerID]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *inMemoryAccountRepo) GetByOwnerForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Account, error) {
	return r.GetByOwner(ctx, ownerID)
}

func (r *inMemoryAccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, balance domain.Ciphertext) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[ownerID]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Balance = balance
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryAccountRepo) UpdateMirror(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, mirror int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[ownerID]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.BalanceMirror = mirror
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryAccountRepo) SetActive(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[ownerID]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Active = active
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Decryption Repo ---

type inMemoryDecryptionRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.DecryptionRecord
}

func newInMemoryDecryptionRepo() *inMemoryDecryptionRepo {
	return &inMemoryDecryptionRepo{records: make(map[uuid.UUID]*domain.DecryptionRecord)}
}

func (r *inMemoryDecryptionRepo) Create(ctx context.Context, record *domain.DecryptionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *inMemoryDecryptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DecryptionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (r *inMemoryDecryptionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.DecryptionRecord, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryDecryptionRepo) MarkVerified(ctx context.Context, tx pgx.Tx, id uuid.UUID, values []int64, verifiedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("decryption record not found")
	}
	if rec.Status != domain.DecryptionStatusPending {
		return fmt.Errorf("decryption record not pending")
	}
	rec.Status = domain.DecryptionStatusVerified
	rec.Values = values
	rec.VerifiedAt = &verifiedAt
	return nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []domain.LedgerEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *inMemoryEventRepo) List(ctx context.Context, limit int) ([]domain.LedgerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LedgerEvent, len(r.events))
	copy(out, r.events)
	// Newest first, matching the persistent store.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
