package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService: the append-only brand
// registry plus the per-pair confidential rate table.
type RegistryServiceImpl struct {
	brandRepo  ports.BrandRepository
	rateRepo   ports.RateRepository
	eventRepo  ports.EventRepository
	accessSvc  ports.AccessService
	engine     ports.ConfidentialEngine
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(
	brandRepo ports.BrandRepository,
	rateRepo ports.RateRepository,
	eventRepo ports.EventRepository,
	accessSvc ports.AccessService,
	engine ports.ConfidentialEngine,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		brandRepo:  brandRepo,
		rateRepo:   rateRepo,
		eventRepo:  eventRepo,
		accessSvc:  accessSvc,
		engine:     engine,
		transactor: transactor,
		log:        log,
	}
}

// RegisterBrand appends a brand identifier to the registry. Owner only.
func (s *RegistryServiceImpl) RegisterBrand(ctx context.Context, callerID uuid.UUID, brandID string) (*domain.Brand, error) {
	if err := s.accessSvc.RequireOwner(ctx, callerID); err != nil {
		return nil, err
	}

	brandID = strings.TrimSpace(brandID)
	if brandID == "" {
		return nil, apperror.Validation("brand identifier must not be empty")
	}

	exists, err := s.brandRepo.Exists(ctx, brandID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check brand: %w", err))
	}
	if exists {
		return nil, apperror.ErrBrandAlreadyRegistered(brandID)
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	position, err := s.brandRepo.NextPosition(ctx, tx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("next position: %w", err))
	}

	brand := &domain.Brand{
		ID:        brandID,
		Position:  position,
		CreatedAt: time.Now().UTC(),
		Registrar: callerID.String(),
	}
	if err := s.brandRepo.Insert(ctx, tx, brand); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert brand: %w", err))
	}

	event, err := domain.NewLedgerEvent(domain.EventBrandRegistered, domain.BrandEventPayload{
		BrandID:  brand.ID,
		Position: brand.Position,
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

	s.log.Info().Str("brand_id", brand.ID).Int64("position", brand.Position).Msg("brand registered")
	return brand, nil
}

// ListBrands returns all registered brands in insertion order. Pure read.
func (s *RegistryServiceImpl) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.brandRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list brands: %w", err))
	}
	return brands, nil
}

// SetRate registers or overwrites the confidential rate for an ordered brand
// pair. Owner only; the confidential input must carry a valid attestation
// before it may enter arithmetic.
func (s *RegistryServiceImpl) SetRate(ctx context.Context, callerID uuid.UUID, req ports.SetRateRequest) (*domain.ExchangeRate, error) {
	if err := s.accessSvc.RequireOwner(ctx, callerID); err != nil {
		return nil, err
	}

	if err := s.requireBrands(ctx, req.FromBrand, req.ToBrand); err != nil {
		return nil, err
	}
	if req.RateMirror <= 0 {
		return nil, apperror.Validation("rate mirror must be positive (zero is the unset sentinel)")
	}
	if !s.engine.VerifyInput(req.Rate, req.Attestation) {
		return nil, apperror.ErrInvalidAttestation()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	rate := &domain.ExchangeRate{
		Pair:       domain.BrandPair{From: req.FromBrand, To: req.ToBrand},
		Rate:       req.Rate,
		RateMirror: req.RateMirror,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.rateRepo.Upsert(ctx, tx, rate); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert rate: %w", err))
	}

	event, err := domain.NewLedgerEvent(domain.EventRateUpdated, domain.RateEventPayload{
		FromBrand:  rate.Pair.From,
		ToBrand:    rate.Pair.To,
		RateMirror: rate.RateMirror,
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

	s.log.Info().
		Str("from_brand", rate.Pair.From).
		Str("to_brand", rate.Pair.To).
		Int64("rate_mirror", rate.RateMirror).
		Msg("exchange rate updated")
	return rate, nil
}

// GetRate returns the configured rate for an ordered pair, or RateNotSet when
// the mirror is the zero sentinel (or no entry exists).
func (s *RegistryServiceImpl) GetRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.Get(ctx, domain.BrandPair{From: from, To: to})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get rate: %w", err))
	}
	if !rate.Configured() {
		return nil, apperror.ErrRateNotSet()
	}
	return rate, nil
}

func (s *RegistryServiceImpl) requireBrands(ctx context.Context, from, to string) error {
	for _, brandID := range []string{from, to} {
		exists, err := s.brandRepo.Exists(ctx, brandID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("check brand: %w", err))
		}
		if !exists {
			return apperror.ErrBrandPairUnsupported()
		}
	}
	return nil
}
