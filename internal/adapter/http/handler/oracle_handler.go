package handler

import (
	"confidential-points-exchange/internal/adapter/http/dto"
	"confidential-points-exchange/internal/adapter/http/middleware"
	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/apperror"
	"confidential-points-exchange/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OracleHandler handles the decryption request/verify cycle. Verify is an
// unauthenticated route: the oracle process is not a participant, and the
// proof itself is the authentication.
type OracleHandler struct {
	oracleSvc ports.OracleService
}

// NewOracleHandler creates a new OracleHandler.
func NewOracleHandler(oracleSvc ports.OracleService) *OracleHandler {
	return &OracleHandler{oracleSvc: oracleSvc}
}

// RequestDecryption handles POST /api/v1/decryptions.
func (h *OracleHandler) RequestDecryption(c *gin.Context) {
	requesterID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RequestDecryptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	handles := make([]domain.Ciphertext, len(req.Handles))
	for i, raw := range req.Handles {
		handles[i] = domain.Ciphertext(raw)
	}

	record, err := h.oracleSvc.RequestDecryption(c.Request.Context(), requesterID, handles)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToDecryptionRecordResponse(record, false))
}

// VerifyDecryption handles POST /api/v1/decryptions/:id/verify.
func (h *OracleHandler) VerifyDecryption(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("record id must be a UUID"))
		return
	}

	var req dto.VerifyDecryptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.oracleSvc.VerifyDecryption(c.Request.Context(), recordID, req.Values, req.Proof)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToDecryptionRecordResponse(result.Record, result.AlreadyVerified))
}

// GetRecord handles GET /api/v1/decryptions/:id.
func (h *OracleHandler) GetRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("record id must be a UUID"))
		return
	}

	record, err := h.oracleSvc.GetRecord(c.Request.Context(), recordID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToDecryptionRecordResponse(record, false))
}
