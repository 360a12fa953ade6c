package testutil

import (
	"context"

	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/integration/billing"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// MockBillingClient implements billing.Client against in-memory
// subscription fixtures and records the edits it receives so tests
// can assert on the exact payloads sent to the provider
type MockBillingClient struct {
	Subscriptions map[string]*subscription.Subscription

	// IntervalEdits records every EditPriceInterval call in order
	IntervalEdits []billing.PriceIntervalEdit

	// PlanChanges records schedule calls keyed by subscription id
	PlanChanges map[string]billing.SchedulePlanChangeRequest

	// Cancelled records CancelPlanChange calls
	Cancelled []string

	// IngestedEvents records every ingested usage event
	IngestedEvents []billing.UsageEvent
}

func NewMockBillingClient() *MockBillingClient {
	return &MockBillingClient{
		Subscriptions: make(map[string]*subscription.Subscription),
		PlanChanges:   make(map[string]billing.SchedulePlanChangeRequest),
	}
}

func (m *MockBillingClient) CreateCustomer(_ context.Context, req billing.CreateCustomerRequest) (*billing.Customer, error) {
	return &billing.Customer{
		ID:         types.GenerateUUIDWithPrefix("cus"),
		Name:       req.Name,
		Email:      req.Email,
		ExternalID: req.ExternalID,
	}, nil
}

func (m *MockBillingClient) CreateSubscription(_ context.Context, req billing.CreateSubscriptionRequest) (*subscription.Subscription, error) {
	sub := &subscription.Subscription{
		ID:     types.GenerateUUIDWithPrefix("sub"),
		Status: "active",
		Plan:   &subscription.Plan{ID: req.PlanID},
	}
	m.Subscriptions[sub.ID] = sub
	return sub, nil
}

func (m *MockBillingClient) GetSubscription(_ context.Context, subscriptionID string) (*subscription.Subscription, error) {
	sub, ok := m.Subscriptions[subscriptionID]
	if !ok {
		return nil, ierr.NewError("subscription not found").
			WithHintf("subscription %s does not exist", subscriptionID).
			Mark(ierr.ErrNotFound)
	}
	return sub, nil
}

func (m *MockBillingClient) ListSubscriptions(_ context.Context, customerID string) ([]subscription.Subscription, error) {
	subs := make([]subscription.Subscription, 0, len(m.Subscriptions))
	for _, sub := range m.Subscriptions {
		subs = append(subs, *sub)
	}
	return subs, nil
}

func (m *MockBillingClient) EditPriceInterval(_ context.Context, subscriptionID string, edit billing.PriceIntervalEdit) error {
	m.IntervalEdits = append(m.IntervalEdits, edit)

	// Mirror the provider's full-replacement semantics on the fixture
	sub, ok := m.Subscriptions[subscriptionID]
	if !ok {
		return ierr.NewError("subscription not found").
			WithHintf("subscription %s does not exist", subscriptionID).
			Mark(ierr.ErrNotFound)
	}
	for i := range sub.PriceIntervals {
		if sub.PriceIntervals[i].ID == edit.PriceIntervalID {
			sub.PriceIntervals[i].FixedFeeQuantityTransitions = edit.FixedFeeQuantityTransitions
		}
	}
	return nil
}

func (m *MockBillingClient) SchedulePlanChange(_ context.Context, subscriptionID string, req billing.SchedulePlanChangeRequest) error {
	m.PlanChanges[subscriptionID] = req
	return nil
}

func (m *MockBillingClient) CancelPlanChange(_ context.Context, subscriptionID string) error {
	m.Cancelled = append(m.Cancelled, subscriptionID)
	delete(m.PlanChanges, subscriptionID)
	return nil
}

func (m *MockBillingClient) IngestEvents(_ context.Context, events []billing.UsageEvent) error {
	m.IngestedEvents = append(m.IngestedEvents, events...)
	return nil
}
