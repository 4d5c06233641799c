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

// IdentityServiceImpl implements ports.IdentityService.
type IdentityServiceImpl struct {
	participantRepo ports.ParticipantRepository
	hashSvc         ports.HashService
	tokenSvc        ports.TokenService
	log             zerolog.Logger
}

// NewIdentityService creates a new IdentityServiceImpl.
func NewIdentityService(
	participantRepo ports.ParticipantRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *IdentityServiceImpl {
	return &IdentityServiceImpl{
		participantRepo: participantRepo,
		hashSvc:         hashSvc,
		tokenSvc:        tokenSvc,
		log:             log,
	}
}

// Register creates a new participant identity.
func (s *IdentityServiceImpl) Register(ctx context.Context, username, password string) (*domain.Participant, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.Validation("username must not be empty")
	}
	if len(password) < 8 {
		return nil, apperror.Validation("password must be at least 8 characters")
	}

	existing, err := s.participantRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	hash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	participant := &domain.Participant{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create participant: %w", err))
	}

	s.log.Info().Str("participant_id", participant.ID.String()).Msg("participant registered")
	return participant, nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords produce the same error.
func (s *IdentityServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	participant, err := s.participantRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("get participant: %w", err))
	}
	if participant == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hashSvc.Verify(password, participant.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(participant.ID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiresAt, nil
}
