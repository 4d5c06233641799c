package service

import (
	"context"
	"fmt"
	"time"

	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService. Each owner gets at most
// one account, created exactly once; accounts deactivate but never disappear.
type AccountServiceImpl struct {
	accountRepo ports.AccountRepository
	eventRepo   ports.EventRepository
	engine      ports.ConfidentialEngine
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(
	accountRepo ports.AccountRepository,
	eventRepo ports.EventRepository,
	engine ports.ConfidentialEngine,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		eventRepo:   eventRepo,
		engine:      engine,
		transactor:  transactor,
		log:         log,
	}
}

// Create opens the caller's account with an attested confidential initial
// balance. Fails with AccountAlreadyExists on a second create for the same
// owner, leaving the existing record untouched.
func (s *AccountServiceImpl) Create(ctx context.Context, req ports.CreateAccountRequest) (*domain.Account, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	existing, err := s.accountRepo.GetByOwnerForUpdate(ctx, tx, req.OwnerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check account: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAccountAlreadyExists()
	}

	if !s.engine.VerifyInput(req.Initial, req.Attestation) {
		return nil, apperror.ErrInvalidAttestation()
	}

	now := time.Now().UTC()
	account := &domain.Account{
		OwnerID:       req.OwnerID,
		Balance:       req.Initial,
		BalanceMirror: req.InitialMirror,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.accountRepo.Create(ctx, tx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}

	event, err := domain.NewLedgerEvent(domain.EventAccountCreated, domain.AccountEventPayload{
		OwnerID: account.OwnerID.String(),
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build event: %w", err))
	}
	if err := s.eventRepo.Append(ctx, tx, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("owner_id", account.OwnerID.String()).Msg("account created")
	return account, nil
}

// Get returns the owner's account.
func (s *AccountServiceImpl) Get(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	return account, nil
}

// Deactivate flips the account inactive. The confidential balance is
// retained; further conversions are refused.
func (s *AccountServiceImpl) Deactivate(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByOwnerForUpdate(ctx, tx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	if !account.Active {
		return nil, apperror.ErrAccountNotActive()
	}

	if err := s.accountRepo.SetActive(ctx, tx, ownerID, false); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deactivate account: %w", err))
	}

	event, err := domain.NewLedgerEvent(domain.EventAccountDeactivated, domain.AccountEventPayload{
		OwnerID: ownerID.String(),
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build event: %w", err))
	}
	if err := s.eventRepo.Append(ctx, tx, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	account.Active = false
	account.UpdatedAt = time.Now().UTC()
	s.log.Info().Str("owner_id", ownerID.String()).Msg("account deactivated")
	return account, nil
}

// UpdateMirror refreshes the advisory plaintext mirror. The mirror is never
// authoritative for conversion arithmetic.
func (s *AccountServiceImpl) UpdateMirror(ctx context.Context, ownerID uuid.UUID, mirror int64) (*domain.Account, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByOwnerForUpdate(ctx, tx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	if !account.Active {
		return nil, apperror.ErrAccountNotActive()
	}

	if err := s.accountRepo.UpdateMirror(ctx, tx, ownerID, mirror); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update mirror: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	account.BalanceMirror = mirror
	account.UpdatedAt = time.Now().UTC()
	return account, nil
}
