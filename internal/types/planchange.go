package types

import (
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
)

// PlanChangeOption is when a scheduled plan change takes effect
type PlanChangeOption string

const (
	PlanChangeImmediate     PlanChangeOption = "immediate"
	PlanChangeEndOfTerm     PlanChangeOption = "end_of_subscription_term"
	PlanChangeRequestedDate PlanChangeOption = "requested_date"
)

func (o PlanChangeOption) Validate() error {
	switch o {
	case PlanChangeImmediate, PlanChangeEndOfTerm, PlanChangeRequestedDate:
		return nil
	}
	return ierr.NewError("invalid plan change option").
		WithHintf("change option %s is not supported", o).
		Mark(ierr.ErrValidation)
}
