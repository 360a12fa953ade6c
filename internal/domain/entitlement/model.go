package entitlement

import (
	"github.com/shopspring/decimal"

	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
)

// Feature is the derived, display-ready representation of one price's
// current and pending state for a customer. Features are recomputed
// from the subscription on every derivation and never persisted.
type Feature struct {
	// Name is the resolved display name: the add-on display name when
	// the price maps to a configured add-on key, else the item name
	Name string `json:"name"`

	// BaseValue is the primary display value ex "3",
	// "1,000 requests: Free", or the "Tier Details" marker when
	// ShowDetailed is set
	BaseValue string `json:"base_value"`

	// OverageInfo describes the next tier or overage rate
	// ex "(then $5.00 / build)"
	OverageInfo string `json:"overage_info,omitempty"`

	// StatusText is the human readable pending-change description
	// ex "Scheduled change to 5 on July 26, 2025"
	StatusText string `json:"status_text,omitempty"`

	// RawQuantity and RawOveragePrice feed cost-delta calculators for
	// adjustable fixed items
	RawQuantity     *decimal.Decimal `json:"raw_quantity,omitempty"`
	RawOveragePrice *decimal.Decimal `json:"raw_overage_price,omitempty"`

	// FutureTransitions is the full sorted list of pending quantity
	// changes so callers can offer removal of any of them
	FutureTransitions []subscription.FixedFeeQuantityTransition `json:"future_transitions,omitempty"`

	// TierDetails is the per-tier breakdown rendered instead of
	// BaseValue when ShowDetailed is set
	TierDetails  []TierDetail `json:"tier_details,omitempty"`
	ShowDetailed bool         `json:"show_detailed"`

	// IsAdjustableFixedPrice marks fixed-fee items whose quantity the
	// customer may change from the dashboard
	IsAdjustableFixedPrice bool `json:"is_adjustable_fixed_price"`

	// PriceID and PriceIntervalID identify the underlying records for
	// follow-up edit calls against the provider
	PriceID         string `json:"price_id"`
	PriceIntervalID string `json:"price_interval_id,omitempty"`
}

// TierDetail is one row of a usage-tier breakdown
type TierDetail struct {
	// Range ex "0-1", "1-∞"
	Range string `json:"range"`
	// Rate ex "Free", "$0.50 per credit"
	Rate string `json:"rate"`
}
