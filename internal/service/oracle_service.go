package service

import (
	"context"
	"fmt"
	"time"

	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OracleServiceImpl implements ports.OracleService: the bridge between the
// ledger's opaque handles and the external decryption process. Per record the
// state machine is Pending -> Verified, Verified terminal. The bridge never
// decrypts locally; it only validates proofs.
type OracleServiceImpl struct {
	decryptRepo ports.DecryptionRepository
	eventRepo   ports.EventRepository
	verifier    ports.ProofVerifier
	dispatcher  ports.OracleDispatcher
	cache       ports.VerifiedValueCache
	transactor  ports.DBTransactor
	verifiedTTL time.Duration
	log         zerolog.Logger
}

// NewOracleService creates a new OracleServiceImpl.
func NewOracleService(
	decryptRepo ports.DecryptionRepository,
	eventRepo ports.EventRepository,
	verifier ports.ProofVerifier,
	dispatcher ports.OracleDispatcher,
	cache ports.VerifiedValueCache,
	transactor ports.DBTransactor,
	verifiedTTL time.Duration,
	log zerolog.Logger,
) *OracleServiceImpl {
	return &OracleServiceImpl{
		decryptRepo: decryptRepo,
		eventRepo:   eventRepo,
		verifier:    verifier,
		dispatcher:  dispatcher,
		cache:       cache,
		transactor:  transactor,
		verifiedTTL: verifiedTTL,
		log:         log,
	}
}

// RequestDecryption opens a pending record for the given handles and hands it
// to the external decryption process. Dispatch is off-ledger: oracle
// availability cannot fail the request, and an unanswered request simply
// never transitions state.
func (s *OracleServiceImpl) RequestDecryption(ctx context.Context, requesterID uuid.UUID, handles []domain.Ciphertext) (*domain.DecryptionRecord, error) {
	if len(handles) == 0 {
		return nil, apperror.Validation("at least one ciphertext handle required")
	}
	for _, h := range handles {
		if h.IsZero() {
			return nil, apperror.Validation("empty ciphertext handle")
		}
	}

	record := &domain.DecryptionRecord{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Handles:     handles,
		Status:      domain.DecryptionStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.decryptRepo.Create(ctx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create decryption record: %w", err))
	}

	if err := s.dispatcher.Dispatch(ctx, record); err != nil {
		// Off-ledger concern: the record stays Pending and the caller may
		// re-request at any time.
		s.log.Warn().Err(err).Str("record_id", record.ID.String()).Msg("oracle dispatch failed")
	}

	s.log.Info().
		Str("record_id", record.ID.String()).
		Str("requester_id", requesterID.String()).
		Int("handles", len(handles)).
		Msg("decryption requested")
	return record, nil
}

// VerifyDecryption validates the oracle's proof and, exactly once per record,
// stores the cleartext values permanently. Re-submission against a verified
// record short-circuits: the stored values come back unchanged and
// AlreadyVerified reports the no-op, regardless of the proof supplied.
func (s *OracleServiceImpl) VerifyDecryption(ctx context.Context, recordID uuid.UUID, values []int64, proof []byte) (*ports.VerifyDecryptionResult, error) {
	// Fast path: a verified record needs no lock and no new round trip.
	if cached, err := s.cache.Get(ctx, recordID); err != nil {
		s.log.Warn().Err(err).Str("record_id", recordID.String()).Msg("verified-value cache read failed")
	} else if cached != nil {
		record, err := s.decryptRepo.GetByID(ctx, recordID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get record: %w", err))
		}
		if record != nil && record.IsVerified() {
			return &ports.VerifyDecryptionResult{Record: record, AlreadyVerified: true}, nil
		}
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	record, err := s.decryptRepo.GetByIDForUpdate(ctx, tx, recordID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock record: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrDecryptionRecordNotFound()
	}
	if record.IsVerified() {
		return &ports.VerifyDecryptionResult{Record: record, AlreadyVerified: true}, nil
	}

	if !s.verifier.Verify(record.ID, record.Handles, values, proof) {
		// State stays Pending; the caller may retry with a fresh proof.
		return nil, apperror.ErrInvalidDecryptionProof()
	}

	now := time.Now().UTC()
	if err := s.decryptRepo.MarkVerified(ctx, tx, record.ID, values, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark verified: %w", err))
	}

	event, err := domain.NewLedgerEvent(domain.EventDecryptionVerified, domain.DecryptionEventPayload{
		RecordID:    record.ID.String(),
		RequesterID: record.RequesterID.String(),
		Values:      values,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build event: %w", err))
	}
	if err := s.eventRepo.Append(ctx, tx, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Best-effort cache fill for the fast path.
	if err := s.cache.Set(ctx, record.ID, values, s.verifiedTTL); err != nil {
		s.log.Warn().Err(err).Str("record_id", record.ID.String()).Msg("verified-value cache write failed")
	}

	record.Status = domain.DecryptionStatusVerified
	record.Values = values
	record.VerifiedAt = &now

	s.log.Info().
		Str("record_id", record.ID.String()).
		Int("values", len(values)).
		Msg("decryption verified")
	return &ports.VerifyDecryptionResult{Record: record, AlreadyVerified: false}, nil
}

// GetRecord returns the record; for verified records the stored cleartext is
// served directly with no external round trip.
func (s *OracleServiceImpl) GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.DecryptionRecord, error) {
	record, err := s.decryptRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get record: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrDecryptionRecordNotFound()
	}
	return record, nil
}
