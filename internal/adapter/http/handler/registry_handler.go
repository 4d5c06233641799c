package handler

import (
	"confidential-points-exchange/internal/adapter/http/dto"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves registry reads open to any authenticated caller.
type RegistryHandler struct {
	registrySvc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registrySvc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registrySvc: registrySvc}
}

// ListBrands handles GET /api/v1/brands.
func (h *RegistryHandler) ListBrands(c *gin.Context) {
	brands, err := h.registrySvc.ListBrands(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.BrandResponse, len(brands))
	for i := range brands {
		out[i] = dto.ToBrandResponse(&brands[i])
	}
	response.OK(c, out)
}

// GetRate handles GET /api/v1/rates/:from/:to. The confidential rate handle
// is never returned; only the advisory mirror is.
func (h *RegistryHandler) GetRate(c *gin.Context) {
	rate, err := h.registrySvc.GetRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRateResponse(rate))
}
