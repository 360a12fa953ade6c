package subscription

import (
	"github.com/shopspring/decimal"

	"github.com/buildhaven/billing-dashboard/internal/domain/price"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// Subscription is the aggregate root fetched fresh from the billing
// provider on every dashboard load. It is never mutated locally: all
// billing changes go through the provider and are reflected by
// re-fetching.
type Subscription struct {
	ID                        string          `json:"id"`
	Status                    string          `json:"status"`
	Currency                  string          `json:"currency"`
	StartDate                 string          `json:"start_date,omitempty"`
	EndDate                   *string         `json:"end_date,omitempty"`
	CurrentBillingPeriodStart string          `json:"current_billing_period_start_date,omitempty"`
	CurrentBillingPeriodEnd   string          `json:"current_billing_period_end_date,omitempty"`
	Plan                      *Plan           `json:"plan,omitempty"`
	PriceIntervals            []PriceInterval `json:"price_intervals,omitempty"`
}

// Plan carries the plan-level price list, the entitlement baseline
type Plan struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Prices []price.Price `json:"prices,omitempty"`
}

// PriceInterval is the time-bounded attachment of one price to the
// subscription. Dates are YYYY-MM-DD strings (see types.DateFormat).
// A nil end date, or one after today, means the interval is active.
type PriceInterval struct {
	ID        string  `json:"id"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`

	Price price.Price `json:"price"`

	// FixedFeeQuantityTransitions is only meaningful when the attached
	// price is a fixed price
	FixedFeeQuantityTransitions []FixedFeeQuantityTransition `json:"fixed_fee_quantity_transitions,omitempty"`
}

// FixedFeeQuantityTransition is a scheduled quantity change for a
// fixed-fee price. EffectiveDate is a zero-padded YYYY-MM-DD string;
// transitions are ordered and compared lexicographically on it, which
// is only valid while the format holds.
type FixedFeeQuantityTransition struct {
	Quantity      decimal.Decimal `json:"quantity"`
	EffectiveDate string          `json:"effective_date"`
	PriceID       string          `json:"price_id,omitempty"`
}

// IsActive reports whether the interval is live on the given day: no
// end date, or an end date strictly after today
func (pi *PriceInterval) IsActive(today string) bool {
	return pi.EndDate == nil || types.IsFutureDate(*pi.EndDate, today)
}

// CurrentPlanID returns the subscription's resolvable plan id, empty
// when the plan has not loaded
func (s *Subscription) CurrentPlanID() string {
	if s == nil || s.Plan == nil {
		return ""
	}
	return s.Plan.ID
}
