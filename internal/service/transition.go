package service

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// TransitionSchedule is the pending-change view of one fixed-fee price
// interval: the human readable status of the next change plus the full
// sorted list of future transitions so callers can offer removal of
// any of them, not only the nearest.
type TransitionSchedule struct {
	StatusText        string
	FutureTransitions []subscription.FixedFeeQuantityTransition
}

// ScheduleStatus filters the interval's transitions down to those
// strictly after today, sorted ascending by effective date, and
// describes the first one as the next pending change. A transition
// effective today counts as already applied, not pending.
func ScheduleStatus(transitions []subscription.FixedFeeQuantityTransition, today string) TransitionSchedule {
	future := lo.Filter(transitions, func(t subscription.FixedFeeQuantityTransition, _ int) bool {
		return types.IsFutureDate(t.EffectiveDate, today)
	})
	sortTransitions(future)

	schedule := TransitionSchedule{FutureTransitions: future}
	if len(future) > 0 {
		next := future[0]
		schedule.StatusText = fmt.Sprintf("Scheduled change to %s on %s",
			types.FormatCompactNumber(next.Quantity),
			types.FormatDisplayDate(next.EffectiveDate))
	}
	return schedule
}

// UsageIntervalStatus is the simpler status for usage-price intervals,
// which carry no quantity transitions: only a future start date is
// worth reporting.
func UsageIntervalStatus(startDate *string, today string) string {
	if startDate == nil || !types.IsFutureDate(*startDate, today) {
		return ""
	}
	return fmt.Sprintf("Starts on %s", types.FormatDisplayDate(*startDate))
}

// MergeTransition folds one new quantity change into an existing
// transition list: any entry on the same effective date is replaced
// (last write wins), then the list is re-sorted. The returned list is
// the complete replacement set the provider expects on every edit --
// the provider replaces the full transition list per price interval
// rather than patching it, so sending only the new entry would drop
// previously scheduled changes.
func MergeTransition(
	transitions []subscription.FixedFeeQuantityTransition,
	quantity decimal.Decimal,
	effectiveDate string,
) []subscription.FixedFeeQuantityTransition {
	merged := lo.Reject(transitions, func(t subscription.FixedFeeQuantityTransition, _ int) bool {
		return t.EffectiveDate == effectiveDate
	})
	merged = append(merged, subscription.FixedFeeQuantityTransition{
		Quantity:      quantity,
		EffectiveDate: effectiveDate,
	})
	sortTransitions(merged)
	return merged
}

// RemoveTransition drops the transition on the given effective date.
// Removing a date that is not present is a tolerated no-op: removed is
// false and the returned list equals the input, which the caller still
// sends to the provider unchanged.
func RemoveTransition(
	transitions []subscription.FixedFeeQuantityTransition,
	effectiveDate string,
) (remaining []subscription.FixedFeeQuantityTransition, removed bool) {
	remaining = lo.Reject(transitions, func(t subscription.FixedFeeQuantityTransition, _ int) bool {
		return t.EffectiveDate == effectiveDate
	})
	return remaining, len(remaining) != len(transitions)
}

// sortTransitions orders by effective date ascending. Lexicographic
// comparison is date comparison for zero-padded YYYY-MM-DD strings.
func sortTransitions(transitions []subscription.FixedFeeQuantityTransition) {
	sort.SliceStable(transitions, func(i, j int) bool {
		return transitions[i].EffectiveDate < transitions[j].EffectiveDate
	})
}
