package service

import (
	"github.com/buildhaven/billing-dashboard/internal/config"
	"github.com/buildhaven/billing-dashboard/internal/domain/planchange"
	"github.com/buildhaven/billing-dashboard/internal/integration/billing"
	"github.com/buildhaven/billing-dashboard/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	PlanChangeRepo planchange.Repository

	// Billing provider client
	BillingClient billing.Client
}

// NewServiceParams bundles the common service dependencies
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	planChangeRepo planchange.Repository,
	billingClient billing.Client,
) ServiceParams {
	return ServiceParams{
		Logger:         logger,
		Config:         config,
		PlanChangeRepo: planChangeRepo,
		BillingClient:  billingClient,
	}
}
