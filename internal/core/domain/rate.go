package domain

import "time"

// ExchangeRate holds the confidential conversion rate for an ordered brand
// pair. RateMirror is a deliberately public copy kept for fast reads and UI;
// it is never used in conversion arithmetic. A mirror of zero is the sentinel
// for "not configured".
type ExchangeRate struct {
	Pair       BrandPair  `json:"pair"`
	Rate       Ciphertext `json:"-"` // Confidential, authoritative
	RateMirror int64      `json:"rate_mirror"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Configured reports whether a usable rate has been set for the pair.
func (r *ExchangeRate) Configured() bool {
	return r != nil && r.RateMirror != 0
}
