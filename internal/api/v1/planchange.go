package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildhaven/billing-dashboard/internal/api/dto"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/logger"
	"github.com/buildhaven/billing-dashboard/internal/service"
)

type PlanChangeHandler struct {
	service service.PlanChangeService
	log     *logger.Logger
}

func NewPlanChangeHandler(service service.PlanChangeService, log *logger.Logger) *PlanChangeHandler {
	return &PlanChangeHandler{service: service, log: log}
}

// SchedulePlanChange submits a plan change to the provider and caches
// the pending record locally
func (h *PlanChangeHandler) SchedulePlanChange(c *gin.Context) {
	subscriptionID := c.Param("id")
	var req dto.SchedulePlanChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	change, err := h.service.SchedulePlanChange(c.Request.Context(), subscriptionID, req)
	if err != nil {
		h.log.Errorw("failed to schedule plan change", "subscription_id", subscriptionID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, change)
}

// GetScheduledPlanChange reconciles the cached record against the
// live subscription and purges it when the change has taken effect
func (h *PlanChangeHandler) GetScheduledPlanChange(c *gin.Context) {
	subscriptionID := c.Param("id")
	resp, err := h.service.GetScheduledPlanChange(c.Request.Context(), subscriptionID)
	if err != nil {
		h.log.Errorw("failed to reconcile plan change", "subscription_id", subscriptionID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelPlanChange unschedules the pending change with the provider
// and drops the cached record
func (h *PlanChangeHandler) CancelPlanChange(c *gin.Context) {
	subscriptionID := c.Param("id")
	if err := h.service.CancelPlanChange(c.Request.Context(), subscriptionID); err != nil {
		h.log.Errorw("failed to cancel plan change", "subscription_id", subscriptionID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
