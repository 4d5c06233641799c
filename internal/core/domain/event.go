package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies an entry kind in the append-only ledger event log.
type EventType string

const (
	EventBrandRegistered      EventType = "BRAND_REGISTERED"
	EventRateUpdated          EventType = "RATE_UPDATED"
	EventAccountCreated       EventType = "ACCOUNT_CREATED"
	EventAccountDeactivated   EventType = "ACCOUNT_DEACTIVATED"
	EventConversionPerformed  EventType = "CONVERSION_PERFORMED"
	EventDecryptionVerified   EventType = "DECRYPTION_VERIFIED"
	EventOwnershipTransferred EventType = "OWNERSHIP_TRANSFERRED"
)

// LedgerEvent is one observable entry in the append-only event log. Payloads
// carry public-safe fields only: amounts and brand identifiers are public by
// design, balances and rates are not.
type LedgerEvent struct {
	ID        uuid.UUID       `json:"id"`
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewLedgerEvent builds an event with a marshaled payload.
func NewLedgerEvent(eventType EventType, payload any) (*LedgerEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &LedgerEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ConversionEventPayload is the public-safe payload of CONVERSION_PERFORMED.
type ConversionEventPayload struct {
	OwnerID   string `json:"owner_id"`
	FromBrand string `json:"from_brand"`
	ToBrand   string `json:"to_brand"`
	Amount    int64  `json:"amount"`
}

// RateEventPayload is the public-safe payload of RATE_UPDATED.
type RateEventPayload struct {
	FromBrand  string `json:"from_brand"`
	ToBrand    string `json:"to_brand"`
	RateMirror int64  `json:"rate_mirror"`
}

// AccountEventPayload is the public-safe payload of account lifecycle events.
type AccountEventPayload struct {
	OwnerID string `json:"owner_id"`
}

// BrandEventPayload is the public-safe payload of BRAND_REGISTERED.
type BrandEventPayload struct {
	BrandID  string `json:"brand_id"`
	Position int64  `json:"position"`
}

// DecryptionEventPayload is the public-safe payload of DECRYPTION_VERIFIED.
type DecryptionEventPayload struct {
	RecordID    string  `json:"record_id"`
	RequesterID string  `json:"requester_id"`
	Values      []int64 `json:"values"`
}

// OwnershipEventPayload is the public-safe payload of OWNERSHIP_TRANSFERRED.
type OwnershipEventPayload struct {
	PreviousOwnerID string `json:"previous_owner_id"`
	NewOwnerID      string `json:"new_owner_id"`
}
