package service

import (
	"context"
	"fmt"
	"time"

	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/apperror"

	"github.com/rs/zerolog"
)

// ConversionServiceImpl implements ports.ConversionService.
//
// The implemented model keeps exactly one confidential balance per account: a
// conversion debits the nominal amount and credits the converted amount into
// that same field. This single-balance-across-brands behavior is intentional
// and must not be "fixed" into per-brand balances without a product decision
// (see DESIGN.md).
type ConversionServiceImpl struct {
	accountRepo ports.AccountRepository
	brandRepo   ports.BrandRepository
	rateRepo    ports.RateRepository
	eventRepo   ports.EventRepository
	engine      ports.ConfidentialEngine
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewConversionService creates a new ConversionServiceImpl.
func NewConversionService(
	accountRepo ports.AccountRepository,
	brandRepo ports.BrandRepository,
	rateRepo ports.RateRepository,
	eventRepo ports.EventRepository,
	engine ports.ConfidentialEngine,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *ConversionServiceImpl {
	return &ConversionServiceImpl{
		accountRepo: accountRepo,
		brandRepo:   brandRepo,
		rateRepo:    rateRepo,
		eventRepo:   eventRepo,
		engine:      engine,
		transactor:  transactor,
		log:         log,
	}
}

// Convert moves value between brands inside the caller's confidential
// balance: balance = (balance - encode(amount)) + rate*encode(amount).
// Preconditions are checked in a fixed order and the first failure aborts the
// transaction, so a refused conversion never mutates the balance.
func (s *ConversionServiceImpl) Convert(ctx context.Context, req ports.ConvertRequest) (*domain.Account, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// Precondition 1: account exists and is active.
	account, err := s.accountRepo.GetByOwnerForUpdate(ctx, tx, req.OwnerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	if !account.CanConvert() {
		return nil, apperror.ErrAccountInactive()
	}

	// Precondition 2: both brands registered.
	for _, brandID := range []string{req.FromBrand, req.ToBrand} {
		exists, err := s.brandRepo.Exists(ctx, brandID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("check brand: %w", err))
		}
		if !exists {
			return nil, apperror.ErrBrandPairUnsupported()
		}
	}

	// Precondition 3: positive amount.
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	// Precondition 4: rate configured for the ordered pair.
	rate, err := s.rateRepo.GetInTx(ctx, tx, domain.BrandPair{From: req.FromBrand, To: req.ToBrand})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get rate: %w", err))
	}
	if !rate.Configured() {
		return nil, apperror.ErrRateNotSet()
	}

	// Homomorphic arithmetic. The plaintext amount is lifted into the
	// confidential domain first; balance and rate stay opaque throughout.
	amountCipher, err := s.engine.Encode(req.Amount)
	if err != nil {
		return nil, apperror.ErrEngineFailure(fmt.Errorf("encode amount: %w", err))
	}
	convertedCipher, err := s.engine.Mul(rate.Rate, amountCipher)
	if err != nil {
		return nil, apperror.ErrEngineFailure(fmt.Errorf("apply rate: %w", err))
	}
	debitedCipher, err := s.engine.Sub(account.Balance, amountCipher)
	if err != nil {
		return nil, apperror.ErrEngineFailure(fmt.Errorf("debit balance: %w", err))
	}
	newBalance, err := s.engine.Add(debitedCipher, convertedCipher)
	if err != nil {
		return nil, apperror.ErrEngineFailure(fmt.Errorf("credit balance: %w", err))
	}

	if err := s.accountRepo.UpdateBalance(ctx, tx, req.OwnerID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	// Amount and brands are public event fields; the balance is not.
	event, err := domain.NewLedgerEvent(domain.EventConversionPerformed, domain.ConversionEventPayload{
		OwnerID:   req.OwnerID.String(),
		FromBrand: req.FromBrand,
		ToBrand:   req.ToBrand,
		Amount:    req.Amount,
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

	account.Balance = newBalance
	account.UpdatedAt = time.Now().UTC()

	s.log.Info().
		Str("owner_id", req.OwnerID.String()).
		Str("from_brand", req.FromBrand).
		Str("to_brand", req.ToBrand).
		Int64("amount", req.Amount).
		Msg("conversion performed")
	return account, nil
}
