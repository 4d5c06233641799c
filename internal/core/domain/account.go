package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is an account holder's confidential points record. There is at most
// one Account per owner, created exactly once; accounts are deactivated, never
// deleted. Balance is the single confidential balance shared across all brand
// conversions; BalanceMirror is advisory only and never authoritative for
// arithmetic.
type Account struct {
	OwnerID       uuid.UUID  `json:"owner_id"`
	Balance       Ciphertext `json:"-"` // Confidential, authoritative
	BalanceMirror int64      `json:"balance_mirror"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CanConvert reports whether the account may participate in conversions.
func (a *Account) CanConvert() bool {
	return a != nil && a.Active
}
