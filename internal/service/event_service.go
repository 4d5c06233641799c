package service

import (
	"context"
	"fmt"

	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// EventServiceImpl implements ports.EventService.
type EventServiceImpl struct {
	eventRepo ports.EventRepository
	log       zerolog.Logger
}

// NewEventService creates a new EventServiceImpl.
func NewEventService(eventRepo ports.EventRepository, log zerolog.Logger) *EventServiceImpl {
	return &EventServiceImpl{eventRepo: eventRepo, log: log}
}

// List returns the most recent ledger events, newest first. The limit is
// clamped to [1, 500]; zero or negative falls back to the default page size.
func (s *EventServiceImpl) List(ctx context.Context, limit int) ([]domain.LedgerEvent, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	events, err := s.eventRepo.List(ctx, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list events: %w", err))
	}
	return events, nil
}
