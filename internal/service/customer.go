package service

import (
	"context"

	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/integration/billing"
)

// CustomerService proxies customer registration and plan signup to the
// billing provider
type CustomerService interface {
	CreateCustomer(ctx context.Context, req billing.CreateCustomerRequest) (*billing.Customer, error)
	CreateSubscription(ctx context.Context, req billing.CreateSubscriptionRequest) (*subscription.Subscription, error)
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{ServiceParams: params}
}

func (s *customerService) CreateCustomer(ctx context.Context, req billing.CreateCustomerRequest) (*billing.Customer, error) {
	if req.Email == "" {
		return nil, ierr.NewError("email is required").
			WithHint("Email is required").
			Mark(ierr.ErrValidation)
	}

	customer, err := s.BillingClient.CreateCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created billing customer", "customer_id", customer.ID)
	return customer, nil
}

func (s *customerService) CreateSubscription(ctx context.Context, req billing.CreateSubscriptionRequest) (*subscription.Subscription, error) {
	if req.CustomerID == "" || req.PlanID == "" {
		return nil, ierr.NewError("customer id and plan id are required").
			WithHint("Customer ID and plan ID are required").
			Mark(ierr.ErrValidation)
	}

	sub, err := s.BillingClient.CreateSubscription(ctx, req)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created subscription",
		"subscription_id", sub.ID,
		"customer_id", req.CustomerID,
		"plan_id", req.PlanID,
	)
	return sub, nil
}
