package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCiphertext_IsZero(t *testing.T) {
	assert.True(t, Ciphertext("").IsZero())
	assert.False(t, Ciphertext("deadbeef").IsZero())
}

func TestExchangeRate_Configured(t *testing.T) {
	var nilRate *ExchangeRate
	assert.False(t, nilRate.Configured())

	unset := &ExchangeRate{Pair: BrandPair{From: "A", To: "B"}, RateMirror: 0}
	assert.False(t, unset.Configured(), "zero mirror is the not-configured sentinel")

	set := &ExchangeRate{Pair: BrandPair{From: "A", To: "B"}, RateMirror: 2}
	assert.True(t, set.Configured())
}

func TestAccount_CanConvert(t *testing.T) {
	var nilAccount *Account
	assert.False(t, nilAccount.CanConvert())

	active := &Account{Active: true}
	assert.True(t, active.CanConvert())

	inactive := &Account{Active: false}
	assert.False(t, inactive.CanConvert())
}

func TestDecryptionRecord_IsVerified(t *testing.T) {
	pending := &DecryptionRecord{Status: DecryptionStatusPending}
	assert.False(t, pending.IsVerified())

	verified := &DecryptionRecord{Status: DecryptionStatusVerified}
	assert.True(t, verified.IsVerified())
}

func TestNewLedgerEvent(t *testing.T) {
	ev, err := NewLedgerEvent(EventConversionPerformed, ConversionEventPayload{
		OwnerID:   "owner-1",
		FromBrand: "AERO",
		ToBrand:   "STAY",
		Amount:    50,
	})
	require.NoError(t, err)
	assert.Equal(t, EventConversionPerformed, ev.Type)
	assert.NotEqual(t, "", ev.ID.String())
	assert.False(t, ev.CreatedAt.IsZero())

	var payload ConversionEventPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.Equal(t, int64(50), payload.Amount)
	assert.Equal(t, "AERO", payload.FromBrand)
}
