package postgres

import (
	"context"
	"fmt"

	"confidential-points-exchange/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository. The table is append-only: no
// update or delete statement exists anywhere in this package.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append writes an event inside the same transaction as the state change it
// records, so the log never shows an operation that did not commit.
func (r *EventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error {
	query := `INSERT INTO ledger_events (id, type, payload, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, event.ID, string(event.Type), event.Payload, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("append ledger event: %w", err)
	}
	return nil
}

// List returns the most recent events, newest first.
func (r *EventRepo) List(ctx context.Context, limit int) ([]domain.LedgerEvent, error) {
	query := `SELECT id, type, payload, created_at FROM ledger_events
		ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger events: %w", err)
	}
	defer rows.Close()

	var events []domain.LedgerEvent
	for rows.Next() {
		var e domain.LedgerEvent
		var eventType string
		if err := rows.Scan(&e.ID, &eventType, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		e.Type = domain.EventType(eventType)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}
