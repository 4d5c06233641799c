package handler

import (
	"encoding/json"
	"strconv"
	"time"

	"confidential-points-exchange/internal/adapter/http/dto"
	"confidential-points-exchange/internal/core/ports"
	"confidential-points-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler serves the observable ledger event log.
type EventHandler struct {
	eventSvc ports.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventSvc ports.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// List handles GET /api/v1/events.
func (h *EventHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	events, err := h.eventSvc.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.EventResponse, len(events))
	for i, e := range events {
		var payload interface{}
		if err := json.Unmarshal(e.Payload, &payload); err != nil {
			payload = string(e.Payload)
		}
		out[i] = dto.EventResponse{
			ID:        e.ID.String(),
			Type:      string(e.Type),
			Payload:   payload,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}
	response.OK(c, out)
}
