package planchange

import (
	"time"

	"github.com/buildhaven/billing-dashboard/internal/types"
)

// ScheduledPlanChange is the locally cached record of a plan change
// the customer has requested but the provider has not yet applied.
// One record exists per subscription id. The record is removed when
// the customer cancels the change or when reconciliation detects the
// subscription's current plan id now equals TargetPlanID.
type ScheduledPlanChange struct {
	ID             string                 `json:"id"`
	SubscriptionID string                 `json:"subscription_id"`
	TargetPlanID   string                 `json:"target_plan_id"`
	TargetPlanName string                 `json:"target_plan_name"`
	ChangeDate     string                 `json:"change_date,omitempty"`
	ChangeOption   types.PlanChangeOption `json:"change_option"`
	ScheduledAt    time.Time              `json:"scheduled_at"`
}
