package handler

import (
	"confidential-points-exchange/internal/adapter/http/dto"
	"confidential-points-exchange/internal/adapter/http/middleware"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/apperror"
	"confidential-points-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConversionHandler handles the conversion endpoint.
type ConversionHandler struct {
	conversionSvc ports.ConversionService
}

// NewConversionHandler creates a new ConversionHandler.
func NewConversionHandler(conversionSvc ports.ConversionService) *ConversionHandler {
	return &ConversionHandler{conversionSvc: conversionSvc}
}

// Convert handles POST /api/v1/conversions.
func (h *ConversionHandler) Convert(c *gin.Context) {
	ownerID, ok := middleware.ParticipantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.conversionSvc.Convert(c.Request.Context(), ports.ConvertRequest{
		OwnerID:   ownerID,
		FromBrand: req.FromBrand,
		ToBrand:   req.ToBrand,
		Amount:    req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToAccountResponse(account))
}
