package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildhaven/billing-dashboard/internal/domain/entitlement"
	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/types"
	"github.com/buildhaven/billing-dashboard/internal/validator"
)

// CustomerEntitlementsResponse is the derived entitlement view for one
// subscription
type CustomerEntitlementsResponse struct {
	SubscriptionID string                `json:"subscription_id"`
	PlanID         string                `json:"plan_id,omitempty"`
	PlanName       string                `json:"plan_name,omitempty"`
	Status         string                `json:"status,omitempty"`
	Features       []entitlement.Feature `json:"features"`
}

// ScheduleTransitionRequest schedules a fixed-fee quantity change on a
// price interval
type ScheduleTransitionRequest struct {
	PriceIntervalID string          `json:"price_interval_id" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	EffectiveDate   string          `json:"effective_date" binding:"required"`
}

func (r *ScheduleTransitionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Quantity.IsNegative() {
		return ierr.NewError("quantity must not be negative").
			WithHint("Quantity must be zero or greater").
			Mark(ierr.ErrValidation)
	}
	// The core compares effective dates as strings; reject anything
	// that is not an exact zero-padded calendar day here.
	if _, err := time.Parse(types.DateFormat, r.EffectiveDate); err != nil {
		return ierr.WithError(err).
			WithHintf("Effective date must be a %s calendar day", "YYYY-MM-DD").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TransitionListResponse returns an interval's complete transition
// list after an edit, the same replacement set sent to the provider
type TransitionListResponse struct {
	PriceIntervalID string                                    `json:"price_interval_id"`
	Transitions     []subscription.FixedFeeQuantityTransition `json:"fixed_fee_quantity_transitions"`

	// Removed is false when a removal targeted a date that was not
	// present; the edit still proceeds with the unchanged list
	Removed *bool `json:"removed,omitempty"`
}
