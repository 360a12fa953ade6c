package dto

import (
	"time"

	"github.com/buildhaven/billing-dashboard/internal/domain/planchange"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/types"
	"github.com/buildhaven/billing-dashboard/internal/validator"
)

// SchedulePlanChangeRequest asks the provider to move a subscription
// to another plan and caches the pending change locally
type SchedulePlanChangeRequest struct {
	TargetPlanID   string                 `json:"target_plan_id" binding:"required"`
	TargetPlanName string                 `json:"target_plan_name"`
	ChangeOption   types.PlanChangeOption `json:"change_option" binding:"required"`
	ChangeDate     string                 `json:"change_date,omitempty"`
}

func (r *SchedulePlanChangeRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.ChangeOption.Validate(); err != nil {
		return err
	}
	if r.ChangeOption == types.PlanChangeRequestedDate {
		if _, err := time.Parse(types.DateFormat, r.ChangeDate); err != nil {
			return ierr.WithError(err).
				WithHint("A requested-date plan change needs a YYYY-MM-DD change date").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// ScheduledPlanChangeResponse is the live view of a cached plan
// change after reconciliation against the current subscription
type ScheduledPlanChangeResponse struct {
	// Current is nil when no change is pending (none scheduled, or
	// the scheduled one has already taken effect and was purged)
	Current *planchange.ScheduledPlanChange `json:"current"`

	// Purged reports that this read detected a completed change and
	// removed the stale record
	Purged bool `json:"purged"`
}
