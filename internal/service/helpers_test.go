package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// mockTx implements pgx.Tx for testing.
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// assertAppError fails the test unless err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
}

// plainEngine is a transparent stand-in for the confidential engine: handles
// are decimal strings, so tests can assert arithmetic results directly.
type plainEngine struct{}

func (plainEngine) Encode(value int64) (domain.Ciphertext, error) {
	return domain.Ciphertext(strconv.FormatInt(value, 10)), nil
}

func (plainEngine) Add(a, b domain.Ciphertext) (domain.Ciphertext, error) {
	return plainCombine(a, b, func(x, y int64) int64 { return x + y })
}

func (plainEngine) Sub(a, b domain.Ciphertext) (domain.Ciphertext, error) {
	return plainCombine(a, b, func(x, y int64) int64 { return x - y })
}

func (plainEngine) Mul(a, b domain.Ciphertext) (domain.Ciphertext, error) {
	return plainCombine(a, b, func(x, y int64) int64 { return x * y })
}

func (plainEngine) VerifyInput(ct domain.Ciphertext, attestation []byte) bool {
	return string(attestation) == "attested:"+ct.String()
}

func plainAttest(ct domain.Ciphertext) []byte {
	return []byte("attested:" + ct.String())
}

func plainValue(t *testing.T, ct domain.Ciphertext) int64 {
	t.Helper()
	v, err := strconv.ParseInt(ct.String(), 10, 64)
	require.NoError(t, err)
	return v
}

func plainCombine(a, b domain.Ciphertext, op func(int64, int64) int64) (domain.Ciphertext, error) {
	x, err := strconv.ParseInt(a.String(), 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse left operand: %w", err)
	}
	y, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse right operand: %w", err)
	}
	return domain.Ciphertext(strconv.FormatInt(op(x, y), 10)), nil
}
