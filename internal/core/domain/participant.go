package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a registered caller identity. The participant UUID is the
// owner key of its Account and the subject of its session tokens.
type Participant struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Argon2id, never exposed
	CreatedAt    time.Time `json:"created_at"`
}

// Ownership is the single persisted registry-owner role. It is ordinary
// state: bootstrapped from configuration on first start and mutable only
// through the ownership-transfer operation.
type Ownership struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	UpdatedAt time.Time `json:"updated_at"`
}
