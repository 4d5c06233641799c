package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"confidential-points-exchange/internal/core/domain"

	"github.com/google/uuid"
)

// DecryptionProofDomainV1 is the domain separator of decryption proofs. It
// keeps a proof minted for another protocol (or a future version) from
// validating here.
const DecryptionProofDomainV1 = "CPX_DECRYPT_V1"

// CanonicalDecryptionMessage renders the message a decryption proof signs.
// The binding covers the record, every handle, the claimed cleartext values
// and this deployment's identity, in a fixed order.
func CanonicalDecryptionMessage(serviceID string, recordID uuid.UUID, handles []domain.Ciphertext, values []int64) string {
	var b strings.Builder
	b.WriteString(DecryptionProofDomainV1)
	b.WriteString("|service=")
	b.WriteString(serviceID)
	b.WriteString("|record=")
	b.WriteString(recordID.String())
	b.WriteString("|handles=")
	for i, h := range handles {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(h))
	}
	b.WriteString("|values=")
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// HMACProofVerifier implements ports.ProofVerifier with an HMAC-SHA256 tag
// over the canonical decryption message, keyed by the secret shared with the
// trusted decryption committee for this deployment.
type HMACProofVerifier struct {
	secret    []byte
	serviceID string
}

// NewHMACProofVerifier creates a verifier for this deployment's identity.
func NewHMACProofVerifier(secret, serviceID string) (*HMACProofVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("proof secret required")
	}
	if serviceID == "" {
		return nil, fmt.Errorf("service identity required")
	}
	return &HMACProofVerifier{secret: []byte(secret), serviceID: serviceID}, nil
}

// Verify checks the proof against the canonical binding. Constant-time
// comparison, like every MAC check in this codebase.
func (v *HMACProofVerifier) Verify(recordID uuid.UUID, handles []domain.Ciphertext, values []int64, proof []byte) bool {
	if len(proof) == 0 || len(handles) == 0 || len(values) != len(handles) {
		return false
	}
	return hmac.Equal(v.Sign(recordID, handles, values), proof)
}

// Sign produces a valid proof. This is the oracle's half of the protocol,
// exposed for the committee stand-in and tests.
func (v *HMACProofVerifier) Sign(recordID uuid.UUID, handles []domain.Ciphertext, values []int64) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(CanonicalDecryptionMessage(v.serviceID, recordID, handles, values)))
	return mac.Sum(nil)
}
