package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildhaven/billing-dashboard/internal/api/dto"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/logger"
	"github.com/buildhaven/billing-dashboard/internal/service"
)

type SubscriptionHandler struct {
	service service.SubscriptionService
	log     *logger.Logger
}

func NewSubscriptionHandler(service service.SubscriptionService, log *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{service: service, log: log}
}

// GetCustomerEntitlements derives the entitlement feature lists for
// all of a customer's subscriptions. The instance query parameter
// selects the product line's display configuration.
func (h *SubscriptionHandler) GetCustomerEntitlements(c *gin.Context) {
	customerID := c.Param("id")
	if customerID == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Customer ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetCustomerEntitlements(c.Request.Context(), customerID, c.Query("instance"))
	if err != nil {
		h.log.Errorw("failed to derive entitlements", "customer_id", customerID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ScheduleTransition merges a quantity transition into a price
// interval's schedule and pushes the full replacement list to the
// provider
func (h *SubscriptionHandler) ScheduleTransition(c *gin.Context) {
	subscriptionID := c.Param("id")
	var req dto.ScheduleTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ScheduleQuantityTransition(c.Request.Context(), subscriptionID, req)
	if err != nil {
		h.log.Errorw("failed to schedule transition", "subscription_id", subscriptionID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveTransition removes a scheduled transition by effective date.
// Removing a date that is no longer present is not an error.
func (h *SubscriptionHandler) RemoveTransition(c *gin.Context) {
	subscriptionID := c.Param("id")
	effectiveDate := c.Param("date")
	priceIntervalID := c.Query("price_interval_id")
	if priceIntervalID == "" {
		c.Error(ierr.NewError("price_interval_id is required").
			WithHint("Price interval ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.RemoveQuantityTransition(c.Request.Context(), subscriptionID, priceIntervalID, effectiveDate)
	if err != nil {
		h.log.Errorw("failed to remove transition", "subscription_id", subscriptionID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
