package domain

import "time"

// Brand is a registered loyalty brand identifier. The registry is append-only:
// brands are never removed, and enumeration preserves insertion order.
type Brand struct {
	ID        string    `json:"id"`
	Position  int64     `json:"position"` // Insertion order, assigned by the registry
	CreatedAt time.Time `json:"created_at"`
	Registrar string    `json:"registrar,omitempty"` // Owner identity that registered it
}

// BrandPair is the structured composite key of the rate table. Keeping the two
// identifiers as separate fields avoids the collision a concatenated key would
// have when an identifier contains the separator.
type BrandPair struct {
	From string `json:"from"`
	To   string `json:"to"`
}
