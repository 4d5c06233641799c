package handler

import (
	"confidential-points-exchange/internal/adapter/http/dto"
	"confidential-points-exchange/internal/adapter/http/middleware"
	"confidential-points-exchange/internal/core/domain"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/apperror"
	"confidential-points-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account lifecycle endpoints.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.Create(c.Request.Context(), ports.CreateAccountRequest{
		OwnerID:       ownerID,
		Initial:       domain.Ciphertext(req.Initial),
		Attestation:   req.Attestation,
		InitialMirror: req.InitialMirror,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToAccountResponse(account))
}

// Get handles GET /api/v1/accounts/me.
func (h *AccountHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	account, err := h.accountSvc.Get(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToAccountResponse(account))
}

// Deactivate handles POST /api/v1/accounts/deactivate.
func (h *AccountHandler) Deactivate(c *gin.Context) {
	ownerID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	account, err := h.accountSvc.Deactivate(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToAccountResponse(account))
}

// UpdateMirror handles PUT /api/v1/accounts/mirror.
func (h *AccountHandler) UpdateMirror(c *gin.Context) {
	ownerID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpdateMirrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.UpdateMirror(c.Request.Context(), ownerID, req.BalanceMirror)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToAccountResponse(account))
}
