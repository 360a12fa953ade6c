package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildhaven/billing-dashboard/internal/api/dto"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/logger"
	"github.com/buildhaven/billing-dashboard/internal/service"
)

type EventsHandler struct {
	service service.EventsService
	log     *logger.Logger
}

func NewEventsHandler(service service.EventsService, log *logger.Logger) *EventsHandler {
	return &EventsHandler{service: service, log: log}
}

// IngestEvents builds and forwards usage events to the provider
func (h *EventsHandler) IngestEvents(c *gin.Context) {
	var req dto.IngestEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.IngestEvents(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to ingest events", "customer_id", req.CustomerID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, resp)
}
