package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
)

func transition(quantity, effectiveDate string) subscription.FixedFeeQuantityTransition {
	return subscription.FixedFeeQuantityTransition{
		Quantity:      dec(quantity),
		EffectiveDate: effectiveDate,
	}
}

func TestScheduleStatusNextChange(t *testing.T) {
	transitions := []subscription.FixedFeeQuantityTransition{
		transition("8", "2025-08-01"),
		transition("5", "2025-07-26"),
		transition("2", "2025-06-15"),
	}

	schedule := ScheduleStatus(transitions, "2025-07-01")
	assert.Equal(t, "Scheduled change to 5 on July 26, 2025", schedule.StatusText)
	if assert.Len(t, schedule.FutureTransitions, 2) {
		assert.Equal(t, "2025-07-26", schedule.FutureTransitions[0].EffectiveDate)
		assert.Equal(t, "2025-08-01", schedule.FutureTransitions[1].EffectiveDate)
	}
}

func TestScheduleStatusTodayIsNotPending(t *testing.T) {
	transitions := []subscription.FixedFeeQuantityTransition{
		transition("5", "2025-07-01"),
	}

	schedule := ScheduleStatus(transitions, "2025-07-01")
	assert.Empty(t, schedule.StatusText)
	assert.Empty(t, schedule.FutureTransitions)
}

func TestScheduleStatusNoTransitions(t *testing.T) {
	schedule := ScheduleStatus(nil, "2025-07-01")
	assert.Empty(t, schedule.StatusText)
	assert.Empty(t, schedule.FutureTransitions)
}

func TestUsageIntervalStatus(t *testing.T) {
	future := "2025-07-26"
	past := "2025-06-01"

	assert.Equal(t, "Starts on July 26, 2025", UsageIntervalStatus(&future, "2025-07-01"))
	assert.Empty(t, UsageIntervalStatus(&past, "2025-07-01"))
	assert.Empty(t, UsageIntervalStatus(nil, "2025-07-01"))
}

func TestMergeTransitionAppendsAndSorts(t *testing.T) {
	existing := []subscription.FixedFeeQuantityTransition{
		transition("8", "2025-08-01"),
	}

	merged := MergeTransition(existing, dec("5"), "2025-07-26")
	if assert.Len(t, merged, 2) {
		assert.Equal(t, "2025-07-26", merged[0].EffectiveDate)
		assert.True(t, merged[0].Quantity.Equal(dec("5")))
		assert.Equal(t, "2025-08-01", merged[1].EffectiveDate)
	}
}

func TestMergeTransitionSameDateReplaces(t *testing.T) {
	existing := []subscription.FixedFeeQuantityTransition{
		transition("5", "2025-07-26"),
		transition("8", "2025-08-01"),
	}

	merged := MergeTransition(existing, dec("6"), "2025-07-26")
	if assert.Len(t, merged, 2) {
		assert.Equal(t, "2025-07-26", merged[0].EffectiveDate)
		assert.True(t, merged[0].Quantity.Equal(dec("6")))
	}

	// Re-merging the same change is a fixpoint
	again := MergeTransition(merged, dec("6"), "2025-07-26")
	assert.Equal(t, merged, again)
}

func TestRemoveTransition(t *testing.T) {
	existing := []subscription.FixedFeeQuantityTransition{
		transition("5", "2025-07-26"),
		transition("8", "2025-08-01"),
	}

	remaining, removed := RemoveTransition(existing, "2025-07-26")
	assert.True(t, removed)
	if assert.Len(t, remaining, 1) {
		assert.Equal(t, "2025-08-01", remaining[0].EffectiveDate)
	}
}

func TestRemoveTransitionAbsentDate(t *testing.T) {
	existing := []subscription.FixedFeeQuantityTransition{
		transition("5", "2025-07-26"),
	}

	remaining, removed := RemoveTransition(existing, "2025-09-15")
	assert.False(t, removed)
	assert.Equal(t, existing, remaining)
}
