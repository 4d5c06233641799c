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

// AccessServiceImpl implements ports.AccessService. The owner role is
// ordinary persisted state: seeded once from configuration and changed only
// through TransferOwnership.
type AccessServiceImpl struct {
	ownershipRepo ports.OwnershipRepository
	eventRepo     ports.EventRepository
	transactor    ports.DBTransactor
	log           zerolog.Logger
}

// NewAccessService creates a new AccessServiceImpl.
func NewAccessService(
	ownershipRepo ports.OwnershipRepository,
	eventRepo ports.EventRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *AccessServiceImpl {
	return &AccessServiceImpl{
		ownershipRepo: ownershipRepo,
		eventRepo:     eventRepo,
		transactor:    transactor,
		log:           log,
	}
}

// Bootstrap installs the configured owner identity if none is persisted.
// The persisted row always wins on subsequent starts.
func (s *AccessServiceImpl) Bootstrap(ctx context.Context, ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return apperror.Validation("bootstrap owner must not be nil")
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	existing, err := s.ownershipRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("read ownership: %w", err))
	}
	if existing != nil {
		return nil
	}

	ownership := &domain.Ownership{OwnerID: ownerID, UpdatedAt: time.Now().UTC()}
	if err := s.ownershipRepo.Set(ctx, tx, ownership); err != nil {
		return apperror.InternalError(fmt.Errorf("seed ownership: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("owner_id", ownerID.String()).Msg("registry owner bootstrapped")
	return nil
}

// Owner returns the current owner identity.
func (s *AccessServiceImpl) Owner(ctx context.Context) (uuid.UUID, error) {
	ownership, err := s.ownershipRepo.Get(ctx)
	if err != nil {
		return uuid.Nil, apperror.InternalError(fmt.Errorf("read ownership: %w", err))
	}
	if ownership == nil {
		return uuid.Nil, apperror.InternalError(fmt.Errorf("ownership not bootstrapped"))
	}
	return ownership.OwnerID, nil
}

// RequireOwner fails with Unauthorized unless the caller is the owner.
func (s *AccessServiceImpl) RequireOwner(ctx context.Context, callerID uuid.UUID) error {
	owner, err := s.Owner(ctx)
	if err != nil {
		return err
	}
	if callerID != owner {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// TransferOwnership moves the owner role to a non-nil identity. Current owner
// only; the check runs against the locked row so concurrent transfers
// linearize.
func (s *AccessServiceImpl) TransferOwnership(ctx context.Context, callerID, newOwnerID uuid.UUID) error {
	if newOwnerID == uuid.Nil {
		return apperror.Validation("new owner must not be nil")
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	ownership, err := s.ownershipRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("read ownership: %w", err))
	}
	if ownership == nil {
		return apperror.InternalError(fmt.Errorf("ownership not bootstrapped"))
	}
	if ownership.OwnerID != callerID {
		return apperror.ErrUnauthorized()
	}

	updated := &domain.Ownership{OwnerID: newOwnerID, UpdatedAt: time.Now().UTC()}
	if err := s.ownershipRepo.Set(ctx, tx, updated); err != nil {
		return apperror.InternalError(fmt.Errorf("update ownership: %w", err))
	}

	event, err := domain.NewLedgerEvent(domain.EventOwnershipTransferred, domain.OwnershipEventPayload{
		PreviousOwnerID: callerID.String(),
		NewOwnerID:      newOwnerID.String(),
	})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build event: %w", err))
	}
	if err := s.eventRepo.Append(ctx, tx, event); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("previous_owner", callerID.String()).
		Str("new_owner", newOwnerID.String()).
		Msg("ownership transferred")
	return nil
}
