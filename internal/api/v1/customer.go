package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/integration/billing"
	"github.com/buildhaven/billing-dashboard/internal/logger"
	"github.com/buildhaven/billing-dashboard/internal/service"
)

type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

func NewCustomerHandler(service service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{service: service, log: log}
}

// CreateCustomer registers a customer with the billing provider
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req billing.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	customer, err := h.service.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create customer", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// CreateSubscription subscribes a customer to a plan
func (h *CustomerHandler) CreateSubscription(c *gin.Context) {
	var req billing.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	sub, err := h.service.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create subscription", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}
