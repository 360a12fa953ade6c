package service

import (
	"context"
	"time"

	"github.com/buildhaven/billing-dashboard/internal/api/dto"
	"github.com/buildhaven/billing-dashboard/internal/domain/planchange"
	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/integration/billing"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// ReconcileResult is the outcome of checking a cached plan change
// against the live subscription
type ReconcileResult struct {
	// Current is the still-pending record, or nil
	Current *planchange.ScheduledPlanChange

	// ShouldPurge signals that the change has taken effect and the
	// cached record is stale
	ShouldPurge bool
}

// ReconcilePlanChange detects whether a cached plan change has already
// taken effect on the provider side. The subscription's current plan
// id is the only ground truth for completion, so this must re-run on
// every subscription fetch; the result itself is never cached.
func ReconcilePlanChange(cached *planchange.ScheduledPlanChange, sub *subscription.Subscription) ReconcileResult {
	if cached == nil {
		return ReconcileResult{}
	}

	// Without a resolvable plan id completion cannot be determined;
	// assume the change is still pending.
	currentPlanID := sub.CurrentPlanID()
	if currentPlanID == "" {
		return ReconcileResult{Current: cached}
	}

	if currentPlanID == cached.TargetPlanID {
		return ReconcileResult{ShouldPurge: true}
	}

	return ReconcileResult{Current: cached}
}

// PlanChangeService owns the scheduled-plan-change lifecycle: submit
// to the provider and cache locally, read back with reconciliation,
// cancel on request.
type PlanChangeService interface {
	SchedulePlanChange(ctx context.Context, subscriptionID string, req dto.SchedulePlanChangeRequest) (*planchange.ScheduledPlanChange, error)
	GetScheduledPlanChange(ctx context.Context, subscriptionID string) (*dto.ScheduledPlanChangeResponse, error)
	CancelPlanChange(ctx context.Context, subscriptionID string) error
}

type planChangeService struct {
	ServiceParams
}

func NewPlanChangeService(params ServiceParams) PlanChangeService {
	return &planChangeService{ServiceParams: params}
}

func (s *planChangeService) SchedulePlanChange(
	ctx context.Context,
	subscriptionID string,
	req dto.SchedulePlanChangeRequest,
) (*planchange.ScheduledPlanChange, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if subscriptionID == "" {
		return nil, ierr.NewError("subscription id is required").
			WithHint("Subscription ID is required").
			Mark(ierr.ErrValidation)
	}

	err := s.BillingClient.SchedulePlanChange(ctx, subscriptionID, billing.SchedulePlanChangeRequest{
		PlanID:       req.TargetPlanID,
		ChangeOption: req.ChangeOption,
		ChangeDate:   req.ChangeDate,
	})
	if err != nil {
		return nil, err
	}

	change := &planchange.ScheduledPlanChange{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN_CHANGE),
		SubscriptionID: subscriptionID,
		TargetPlanID:   req.TargetPlanID,
		TargetPlanName: req.TargetPlanName,
		ChangeDate:     req.ChangeDate,
		ChangeOption:   req.ChangeOption,
		ScheduledAt:    time.Now().UTC(),
	}
	if err := s.PlanChangeRepo.Set(ctx, change); err != nil {
		return nil, err
	}

	s.Logger.Infow("scheduled plan change",
		"subscription_id", subscriptionID,
		"target_plan_id", req.TargetPlanID,
		"change_option", req.ChangeOption,
	)
	return change, nil
}

func (s *planChangeService) GetScheduledPlanChange(
	ctx context.Context,
	subscriptionID string,
) (*dto.ScheduledPlanChangeResponse, error) {
	cached, err := s.PlanChangeRepo.Get(ctx, subscriptionID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return &dto.ScheduledPlanChangeResponse{}, nil
		}
		return nil, err
	}

	sub, err := s.BillingClient.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	result := ReconcilePlanChange(cached, sub)
	if result.ShouldPurge {
		// Idempotent: a concurrent reconciliation may already have
		// removed the record
		if err := s.PlanChangeRepo.Delete(ctx, subscriptionID); err != nil {
			return nil, err
		}
		s.Logger.Infow("purged completed plan change",
			"subscription_id", subscriptionID,
			"target_plan_id", cached.TargetPlanID,
		)
		return &dto.ScheduledPlanChangeResponse{Purged: true}, nil
	}

	return &dto.ScheduledPlanChangeResponse{Current: result.Current}, nil
}

func (s *planChangeService) CancelPlanChange(ctx context.Context, subscriptionID string) error {
	if err := s.BillingClient.CancelPlanChange(ctx, subscriptionID); err != nil {
		return err
	}
	return s.PlanChangeRepo.Delete(ctx, subscriptionID)
}
