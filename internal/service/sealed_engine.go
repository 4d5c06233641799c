package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"confidential-points-exchange/internal/core/domain"
)

// SealedEngine implements ports.ConfidentialEngine by sealing the integer
// payload under AES-256-GCM. Arithmetic is unseal-compute-reseal inside the
// engine boundary: callers only ever hold opaque handles, and the sealing key
// never leaves the engine. Input attestations are HMAC-SHA256 tags binding a
// handle to this deployment's attestation secret, so a ciphertext minted for
// different parameters (or fabricated wholesale) is rejected before it can
// enter arithmetic.
type SealedEngine struct {
	key          []byte // 32-byte key for AES-256
	attestSecret []byte
}

// NewSealedEngine creates an engine from a 64-char hex seal key and an
// attestation secret.
func NewSealedEngine(hexKey string, attestSecret string) (*SealedEngine, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding seal key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("seal key must be 32 bytes, got %d", len(key))
	}
	if attestSecret == "" {
		return nil, fmt.Errorf("attestation secret required")
	}
	return &SealedEngine{key: key, attestSecret: []byte(attestSecret)}, nil
}

// Encode lifts a plaintext value into the confidential domain.
func (e *SealedEngine) Encode(value int64) (domain.Ciphertext, error) {
	return e.seal(value)
}

// Add returns a handle for the sum of the two sealed values.
func (e *SealedEngine) Add(a, b domain.Ciphertext) (domain.Ciphertext, error) {
	return e.combine(a, b, func(x, y int64) int64 { return x + y })
}

// Sub returns a handle for the difference of the two sealed values.
func (e *SealedEngine) Sub(a, b domain.Ciphertext) (domain.Ciphertext, error) {
	return e.combine(a, b, func(x, y int64) int64 { return x - y })
}

// Mul returns a handle for the product of the two sealed values.
func (e *SealedEngine) Mul(a, b domain.Ciphertext) (domain.Ciphertext, error) {
	return e.combine(a, b, func(x, y int64) int64 { return x * y })
}

// VerifyInput checks that the attestation tag matches this deployment's
// parameters for the given handle.
func (e *SealedEngine) VerifyInput(ct domain.Ciphertext, attestation []byte) bool {
	if ct.IsZero() || len(attestation) == 0 {
		return false
	}
	return hmac.Equal(e.Attest(ct), attestation)
}

// Attest produces the input-attestation tag for a handle. Exposed so the
// client-side encryption tooling (and tests) can mint valid inputs.
func (e *SealedEngine) Attest(ct domain.Ciphertext) []byte {
	mac := hmac.New(sha256.New, e.attestSecret)
	mac.Write([]byte(ct))
	return mac.Sum(nil)
}

// Reveal unseals a handle to its plaintext value. This is the decryption
// oracle's side of the boundary: the ledger itself never calls it.
func (e *SealedEngine) Reveal(ct domain.Ciphertext) (int64, error) {
	return e.unseal(ct)
}

func (e *SealedEngine) combine(a, b domain.Ciphertext, op func(int64, int64) int64) (domain.Ciphertext, error) {
	x, err := e.unseal(a)
	if err != nil {
		return "", fmt.Errorf("unsealing left operand: %w", err)
	}
	y, err := e.unseal(b)
	if err != nil {
		return "", fmt.Errorf("unsealing right operand: %w", err)
	}
	return e.seal(op(x, y))
}

func (e *SealedEngine) seal(value int64) (domain.Ciphertext, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, uint64(value))

	sealed := aesGCM.Seal(nonce, nonce, payload, nil)
	return domain.Ciphertext(hex.EncodeToString(sealed)), nil
}

func (e *SealedEngine) unseal(ct domain.Ciphertext) (int64, error) {
	raw, err := hex.DecodeString(string(ct))
	if err != nil {
		return 0, fmt.Errorf("decoding handle: %w", err)
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return 0, fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return 0, fmt.Errorf("creating GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(raw) < nonceSize {
		return 0, fmt.Errorf("handle too short")
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	payload, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return 0, fmt.Errorf("unsealing: %w", err)
	}
	if len(payload) != 8 {
		return 0, fmt.Errorf("unexpected payload length %d", len(payload))
	}

	return int64(binary.BigEndian.Uint64(payload)), nil
}
