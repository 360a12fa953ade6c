package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/buildhaven/billing-dashboard/internal/api/dto"
	"github.com/buildhaven/billing-dashboard/internal/domain/planchange"
	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	"github.com/buildhaven/billing-dashboard/internal/testutil"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

type PlanChangeServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PlanChangeService
}

func TestPlanChangeService(t *testing.T) {
	suite.Run(t, new(PlanChangeServiceSuite))
}

func (s *PlanChangeServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPlanChangeService(NewServiceParams(
		s.GetLogger(), s.GetConfig(), s.GetStores().PlanChangeRepo, s.GetBillingClient(),
	))

	s.GetBillingClient().Subscriptions["sub_1"] = &subscription.Subscription{
		ID:     "sub_1",
		Status: "active",
		Plan:   &subscription.Plan{ID: "plan_basic", Name: "Basic"},
	}
}

func (s *PlanChangeServiceSuite) TestScheduleAndGetPending() {
	change, err := s.service.SchedulePlanChange(s.GetContext(), "sub_1", dto.SchedulePlanChangeRequest{
		TargetPlanID:   "plan_pro",
		TargetPlanName: "Pro",
		ChangeOption:   types.PlanChangeEndOfTerm,
	})
	s.NoError(err)
	s.NotNil(change)
	s.Equal("plan_pro", change.TargetPlanID)
	s.NotEmpty(change.ID)
	s.False(change.ScheduledAt.IsZero())

	// The provider received the schedule call
	req, ok := s.GetBillingClient().PlanChanges["sub_1"]
	s.True(ok)
	s.Equal("plan_pro", req.PlanID)
	s.Equal(types.PlanChangeEndOfTerm, req.ChangeOption)

	// Reading it back while the subscription is still on the old plan
	// reports the change as pending
	resp, err := s.service.GetScheduledPlanChange(s.GetContext(), "sub_1")
	s.NoError(err)
	s.NotNil(resp.Current)
	s.Equal("plan_pro", resp.Current.TargetPlanID)
	s.False(resp.Purged)
}

func (s *PlanChangeServiceSuite) TestGetWithoutRecord() {
	resp, err := s.service.GetScheduledPlanChange(s.GetContext(), "sub_1")
	s.NoError(err)
	s.Nil(resp.Current)
	s.False(resp.Purged)
}

func (s *PlanChangeServiceSuite) TestPurgeAfterChangeApplies() {
	_, err := s.service.SchedulePlanChange(s.GetContext(), "sub_1", dto.SchedulePlanChangeRequest{
		TargetPlanID: "plan_pro",
		ChangeOption: types.PlanChangeImmediate,
	})
	s.NoError(err)

	// The provider applies the change
	s.GetBillingClient().Subscriptions["sub_1"].Plan.ID = "plan_pro"

	resp, err := s.service.GetScheduledPlanChange(s.GetContext(), "sub_1")
	s.NoError(err)
	s.Nil(resp.Current)
	s.True(resp.Purged)

	// A second read finds nothing; purging is idempotent
	resp, err = s.service.GetScheduledPlanChange(s.GetContext(), "sub_1")
	s.NoError(err)
	s.Nil(resp.Current)
	s.False(resp.Purged)
}

func (s *PlanChangeServiceSuite) TestCancel() {
	_, err := s.service.SchedulePlanChange(s.GetContext(), "sub_1", dto.SchedulePlanChangeRequest{
		TargetPlanID: "plan_pro",
		ChangeOption: types.PlanChangeEndOfTerm,
	})
	s.NoError(err)

	s.NoError(s.service.CancelPlanChange(s.GetContext(), "sub_1"))
	s.Contains(s.GetBillingClient().Cancelled, "sub_1")

	resp, err := s.service.GetScheduledPlanChange(s.GetContext(), "sub_1")
	s.NoError(err)
	s.Nil(resp.Current)
}

func (s *PlanChangeServiceSuite) TestScheduleValidation() {
	_, err := s.service.SchedulePlanChange(s.GetContext(), "sub_1", dto.SchedulePlanChangeRequest{
		TargetPlanID: "plan_pro",
		ChangeOption: types.PlanChangeRequestedDate,
	})
	s.Error(err)

	_, err = s.service.SchedulePlanChange(s.GetContext(), "", dto.SchedulePlanChangeRequest{
		TargetPlanID: "plan_pro",
		ChangeOption: types.PlanChangeImmediate,
	})
	s.Error(err)

	_, err = s.service.SchedulePlanChange(s.GetContext(), "sub_1", dto.SchedulePlanChangeRequest{
		TargetPlanID: "plan_pro",
		ChangeOption: types.PlanChangeRequestedDate,
		ChangeDate:   "2025-09-15",
	})
	s.NoError(err)
}

func TestReconcilePlanChange(t *testing.T) {
	cached := &planchange.ScheduledPlanChange{
		SubscriptionID: "sub_1",
		TargetPlanID:   "plan_pro",
	}

	t.Run("nothing cached", func(t *testing.T) {
		result := ReconcilePlanChange(nil, &subscription.Subscription{})
		assert.Nil(t, result.Current)
		assert.False(t, result.ShouldPurge)
	})

	t.Run("plan not resolvable stays pending", func(t *testing.T) {
		result := ReconcilePlanChange(cached, &subscription.Subscription{ID: "sub_1"})
		assert.Equal(t, cached, result.Current)
		assert.False(t, result.ShouldPurge)
	})

	t.Run("different plan stays pending", func(t *testing.T) {
		sub := &subscription.Subscription{Plan: &subscription.Plan{ID: "plan_basic"}}
		result := ReconcilePlanChange(cached, sub)
		assert.Equal(t, cached, result.Current)
		assert.False(t, result.ShouldPurge)
	})

	t.Run("target plan reached purges", func(t *testing.T) {
		sub := &subscription.Subscription{Plan: &subscription.Plan{ID: "plan_pro"}}
		result := ReconcilePlanChange(cached, sub)
		assert.Nil(t, result.Current)
		assert.True(t, result.ShouldPurge)
	})
}
