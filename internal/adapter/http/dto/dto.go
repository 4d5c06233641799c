package dto

import (
	"time"

	"confidential-points-exchange/internal/core/domain"
)

// --- Auth ---

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type RegisterResponse struct {
	ParticipantID string `json:"participant_id"`
	Username      string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// --- Brand registry & rate table ---

type RegisterBrandRequest struct {
	BrandID string `json:"brand_id" binding:"required,min=1,max=64"`
}

type BrandResponse struct {
	BrandID   string `json:"brand_id"`
	Position  int64  `json:"position"`
	CreatedAt string `json:"created_at"`
}

// SetRateRequest carries the confidential rate handle plus the attestation
// binding it to this deployment. Attestation and proof fields are base64.
type SetRateRequest struct {
	FromBrand   string `json:"from_brand" binding:"required"`
	ToBrand     string `json:"to_brand" binding:"required"`
	Rate        string `json:"rate" binding:"required"`
	Attestation []byte `json:"attestation" binding:"required"`
	RateMirror  int64  `json:"rate_mirror" binding:"required,gt=0"`
}

type RateResponse struct {
	FromBrand  string `json:"from_brand"`
	ToBrand    string `json:"to_brand"`
	RateMirror int64  `json:"rate_mirror"`
	UpdatedAt  string `json:"updated_at"`
}

type TransferOwnershipRequest struct {
	NewOwnerID string `json:"new_owner_id" binding:"required,uuid"`
}

// --- Accounts ---

type CreateAccountRequest struct {
	Initial       string `json:"initial" binding:"required"`
	Attestation   []byte `json:"attestation" binding:"required"`
	InitialMirror int64  `json:"initial_mirror" binding:"gte=0"`
}

type AccountResponse struct {
	OwnerID       string `json:"owner_id"`
	BalanceMirror int64  `json:"balance_mirror"`
	Active        bool   `json:"active"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type UpdateMirrorRequest struct {
	BalanceMirror int64 `json:"balance_mirror" binding:"gte=0"`
}

// --- Conversions ---

type ConvertRequest struct {
	FromBrand string `json:"from_brand" binding:"required"`
	ToBrand   string `json:"to_brand" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

// --- Decryption oracle ---

type RequestDecryptionRequest struct {
	Handles []string `json:"handles" binding:"required,min=1,dive,required"`
}

type VerifyDecryptionRequest struct {
	Values []int64 `json:"values" binding:"required,min=1"`
	Proof  []byte  `json:"proof" binding:"required"`
}

type DecryptionRecordResponse struct {
	RecordID        string  `json:"record_id"`
	RequesterID     string  `json:"requester_id"`
	Status          string  `json:"status"`
	Values          []int64 `json:"values,omitempty"`
	AlreadyVerified bool    `json:"already_verified,omitempty"`
	CreatedAt       string  `json:"created_at"`
	VerifiedAt      string  `json:"verified_at,omitempty"`
}

// --- Events ---

type EventResponse struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt string      `json:"created_at"`
}

// --- Converters ---

func ToBrandResponse(b *domain.Brand) BrandResponse {
	return BrandResponse{
		BrandID:   b.ID,
		Position:  b.Position,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToRateResponse(r *domain.ExchangeRate) RateResponse {
	return RateResponse{
		FromBrand:  r.Pair.From,
		ToBrand:    r.Pair.To,
		RateMirror: r.RateMirror,
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		OwnerID:       a.OwnerID.String(),
		BalanceMirror: a.BalanceMirror,
		Active:        a.Active,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

func ToDecryptionRecordResponse(rec *domain.DecryptionRecord, alreadyVerified bool) DecryptionRecordResponse {
	resp := DecryptionRecordResponse{
		RecordID:        rec.ID.String(),
		RequesterID:     rec.RequesterID.String(),
		Status:          string(rec.Status),
		Values:          rec.Values,
		AlreadyVerified: alreadyVerified,
		CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.VerifiedAt != nil {
		resp.VerifiedAt = rec.VerifiedAt.Format(time.RFC3339)
	}
	return resp
}
