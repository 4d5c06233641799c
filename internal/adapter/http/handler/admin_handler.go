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

// AdminHandler handles owner-only registry mutations. The owner check itself
// lives in the service layer; these endpoints only need an authenticated
// caller to attribute the attempt to.
type AdminHandler struct {
	registrySvc ports.RegistryService
	accessSvc   ports.AccessService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(registrySvc ports.RegistryService, accessSvc ports.AccessService) *AdminHandler {
	return &AdminHandler{registrySvc: registrySvc, accessSvc: accessSvc}
}

// RegisterBrand handles POST /api/v1/admin/brands.
func (h *AdminHandler) RegisterBrand(c *gin.Context) {
	callerID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RegisterBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	brand, err := h.registrySvc.RegisterBrand(c.Request.Context(), callerID, req.BrandID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToBrandResponse(brand))
}

// SetRate handles PUT /api/v1/admin/rates.
func (h *AdminHandler) SetRate(c *gin.Context) {
	callerID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	rate, err := h.registrySvc.SetRate(c.Request.Context(), callerID, ports.SetRateRequest{
		FromBrand:   req.FromBrand,
		ToBrand:     req.ToBrand,
		Rate:        domain.Ciphertext(req.Rate),
		Attestation: req.Attestation,
		RateMirror:  req.RateMirror,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRateResponse(rate))
}

// TransferOwnership handles POST /api/v1/admin/ownership.
func (h *AdminHandler) TransferOwnership(c *gin.Context) {
	callerID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	newOwnerID, err := uuid.Parse(req.NewOwnerID)
	if err != nil {
		response.Error(c, apperror.Validation("new_owner_id must be a UUID"))
		return
	}

	if err := h.accessSvc.TransferOwnership(c.Request.Context(), callerID, newOwnerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"new_owner_id": newOwnerID.String()})
}
