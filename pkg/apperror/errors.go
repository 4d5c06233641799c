package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authorization & Authentication (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Caller is not the registry owner", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_003", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_004", "Username already exists", http.StatusConflict)
}

// ---- Brand Registry & Rate Table (REG) ----

func ErrBrandAlreadyRegistered(brand string) *AppError {
	return New("REG_001", fmt.Sprintf("Brand %q is already registered", brand), http.StatusConflict)
}

func ErrBrandPairUnsupported() *AppError {
	return New("REG_002", "One or both brands are not registered", http.StatusUnprocessableEntity)
}

func ErrRateNotSet() *AppError {
	return New("REG_003", "No exchange rate configured for this brand pair", http.StatusNotFound)
}

// ---- Account Store (ACC) ----

func ErrAccountAlreadyExists() *AppError {
	return New("ACC_001", "Account already exists for this owner", http.StatusConflict)
}

func ErrAccountNotFound() *AppError {
	return New("ACC_002", "Account not found", http.StatusNotFound)
}

func ErrAccountInactive() *AppError {
	return New("ACC_003", "Account is inactive", http.StatusUnprocessableEntity)
}

func ErrAccountNotActive() *AppError {
	return New("ACC_004", "Account is already inactive", http.StatusConflict)
}

func ErrInvalidAmount() *AppError {
	return New("ACC_005", "Amount must be greater than zero", http.StatusBadRequest)
}

// ---- Attestations & Proofs (ATT) ----

func ErrInvalidAttestation() *AppError {
	return New("ATT_001", "Confidential input attestation failed verification", http.StatusBadRequest)
}

func ErrInvalidDecryptionProof() *AppError {
	return New("ATT_002", "Decryption proof failed verification", http.StatusBadRequest)
}

// ---- Decryption Oracle (ORC) ----

func ErrDecryptionRecordNotFound() *AppError {
	return New("ORC_001", "Decryption record not found", http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEngineFailure(err error) *AppError {
	return Wrap("SYS_002", "Confidential engine failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
