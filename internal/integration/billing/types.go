package billing

import (
	"time"

	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// Wire shapes for the subscription-billing provider's REST API. The
// provider owns these formats; fields mirror its documented
// request/response bodies.

// CreateCustomerRequest registers a customer with the provider
type CreateCustomerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	ExternalID      string `json:"external_customer_id,omitempty"`
	PaymentProvider string `json:"payment_provider,omitempty"`
}

// Customer is the provider's customer record
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ExternalID string `json:"external_customer_id,omitempty"`
}

// CreateSubscriptionRequest subscribes a customer to a plan
type CreateSubscriptionRequest struct {
	CustomerID string `json:"customer_id"`
	PlanID     string `json:"plan_id"`
	StartDate  string `json:"start_date,omitempty"`
}

// subscriptionsResponse is the provider's paginated list envelope
type subscriptionsResponse struct {
	Data []subscription.Subscription `json:"data"`
}

// EditPriceIntervalRequest replaces a price interval's transition
// list. The provider replaces the full set per interval rather than
// patching it, so the list must always be the complete desired state.
type EditPriceIntervalRequest struct {
	Edits []PriceIntervalEdit `json:"edit"`
}

// PriceIntervalEdit is one interval's replacement transition list
type PriceIntervalEdit struct {
	PriceIntervalID             string                                    `json:"price_interval_id"`
	FixedFeeQuantityTransitions []subscription.FixedFeeQuantityTransition `json:"fixed_fee_quantity_transitions"`
}

// SchedulePlanChangeRequest moves a subscription to another plan
type SchedulePlanChangeRequest struct {
	PlanID       string                 `json:"plan_id"`
	ChangeOption types.PlanChangeOption `json:"change_option"`
	ChangeDate   string                 `json:"change_date,omitempty"`
}

// UsageEvent is one metered usage event for the provider's ingest
// endpoint
type UsageEvent struct {
	IdempotencyKey     string                 `json:"idempotency_key"`
	CustomerID         string                 `json:"customer_id,omitempty"`
	ExternalCustomerID string                 `json:"external_customer_id,omitempty"`
	EventName          string                 `json:"event_name"`
	Timestamp          time.Time              `json:"timestamp"`
	Properties         map[string]interface{} `json:"properties,omitempty"`
}

// ingestRequest is the ingest endpoint's envelope
type ingestRequest struct {
	Events []UsageEvent `json:"events"`
}
