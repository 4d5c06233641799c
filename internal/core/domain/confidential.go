package domain

// Ciphertext is an opaque confidential value handle produced by the
// confidential-computation engine. The ledger combines ciphertexts through the
// engine's homomorphic operations and never inspects the plaintext; the only
// sanctioned path from a Ciphertext to a cleartext value is the decryption
// oracle's verified round trip.
type Ciphertext string

// IsZero reports whether the handle is empty (no confidential value attached).
func (c Ciphertext) IsZero() bool {
	return c == ""
}

func (c Ciphertext) String() string {
	return string(c)
}
