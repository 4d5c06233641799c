package domain

import (
	"time"

	"github.com/google/uuid"
)

// DecryptionStatus is the lifecycle state of a decryption record.
type DecryptionStatus string

const (
	DecryptionStatusPending  DecryptionStatus = "PENDING"
	DecryptionStatusVerified DecryptionStatus = "VERIFIED"
)

// DecryptionRecord tracks one decrypt-and-prove cycle. A record moves from
// PENDING to VERIFIED exactly once; VERIFIED is terminal and the stored
// cleartext values are immutable from then on.
type DecryptionRecord struct {
	ID          uuid.UUID        `json:"id"`
	RequesterID uuid.UUID        `json:"requester_id"`
	Handles     []Ciphertext     `json:"-"` // Ciphertext handles under decryption
	Status      DecryptionStatus `json:"status"`
	Values      []int64          `json:"values,omitempty"` // Set once, at verification
	CreatedAt   time.Time        `json:"created_at"`
	VerifiedAt  *time.Time       `json:"verified_at,omitempty"`
}

// IsVerified reports whether the record reached its terminal state.
func (r *DecryptionRecord) IsVerified() bool {
	return r != nil && r.Status == DecryptionStatusVerified
}
