package service

import (
	"context"
	"time"

	"github.com/buildhaven/billing-dashboard/internal/api/dto"
	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/integration/billing"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// SubscriptionService is the dashboard's read/edit surface over the
// provider's subscriptions: derived entitlements per subscription and
// fixed-fee quantity transition edits
type SubscriptionService interface {
	GetCustomerEntitlements(ctx context.Context, customerID, instanceName string) ([]dto.CustomerEntitlementsResponse, error)
	ScheduleQuantityTransition(ctx context.Context, subscriptionID string, req dto.ScheduleTransitionRequest) (*dto.TransitionListResponse, error)
	RemoveQuantityTransition(ctx context.Context, subscriptionID, priceIntervalID, effectiveDate string) (*dto.TransitionListResponse, error)
}

type subscriptionService struct {
	ServiceParams
	entitlements EntitlementService
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{
		ServiceParams: params,
		entitlements:  NewEntitlementService(params),
	}
}

func (s *subscriptionService) GetCustomerEntitlements(
	ctx context.Context,
	customerID, instanceName string,
) ([]dto.CustomerEntitlementsResponse, error) {
	if customerID == "" {
		return nil, ierr.NewError("customer id is required").
			WithHint("Customer ID is required").
			Mark(ierr.ErrValidation)
	}

	instance, ok := s.Config.Instance(instanceName)
	if !ok {
		return nil, ierr.NewError("unknown billing instance").
			WithHintf("billing instance %s is not configured", instanceName).
			Mark(ierr.ErrValidation)
	}

	subs, err := s.BillingClient.ListSubscriptions(ctx, customerID)
	if err != nil {
		return nil, err
	}

	today := types.FormatDate(time.Now())
	responses := make([]dto.CustomerEntitlementsResponse, 0, len(subs))
	for i := range subs {
		sub := &subs[i]
		resp := dto.CustomerEntitlementsResponse{
			SubscriptionID: sub.ID,
			Status:         sub.Status,
			Features:       s.entitlements.DeriveFeatures(sub, instance, today),
		}
		if sub.Plan != nil {
			resp.PlanID = sub.Plan.ID
			resp.PlanName = sub.Plan.Name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *subscriptionService) ScheduleQuantityTransition(
	ctx context.Context,
	subscriptionID string,
	req dto.ScheduleTransitionRequest,
) (*dto.TransitionListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	interval, err := s.findInterval(ctx, subscriptionID, req.PriceIntervalID)
	if err != nil {
		return nil, err
	}

	merged := MergeTransition(interval.FixedFeeQuantityTransitions, req.Quantity, req.EffectiveDate)
	if err := s.replaceTransitions(ctx, subscriptionID, req.PriceIntervalID, merged); err != nil {
		return nil, err
	}

	s.Logger.Infow("scheduled quantity transition",
		"subscription_id", subscriptionID,
		"price_interval_id", req.PriceIntervalID,
		"effective_date", req.EffectiveDate,
	)
	return &dto.TransitionListResponse{
		PriceIntervalID: req.PriceIntervalID,
		Transitions:     merged,
	}, nil
}

func (s *subscriptionService) RemoveQuantityTransition(
	ctx context.Context,
	subscriptionID, priceIntervalID, effectiveDate string,
) (*dto.TransitionListResponse, error) {
	interval, err := s.findInterval(ctx, subscriptionID, priceIntervalID)
	if err != nil {
		return nil, err
	}

	remaining, removed := RemoveTransition(interval.FixedFeeQuantityTransitions, effectiveDate)
	if !removed {
		// Tolerated: the date was not in the list, likely removed by
		// an earlier edit. The unchanged list is still sent so the
		// provider state stays explicit.
		s.Logger.Warnw("transition to remove was not found",
			"subscription_id", subscriptionID,
			"price_interval_id", priceIntervalID,
			"effective_date", effectiveDate,
		)
	}
	if err := s.replaceTransitions(ctx, subscriptionID, priceIntervalID, remaining); err != nil {
		return nil, err
	}

	return &dto.TransitionListResponse{
		PriceIntervalID: priceIntervalID,
		Transitions:     remaining,
		Removed:         &removed,
	}, nil
}

// findInterval loads the subscription and locates one of its price
// intervals
func (s *subscriptionService) findInterval(
	ctx context.Context,
	subscriptionID, priceIntervalID string,
) (*subscription.PriceInterval, error) {
	sub, err := s.BillingClient.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	for i := range sub.PriceIntervals {
		if sub.PriceIntervals[i].ID == priceIntervalID {
			return &sub.PriceIntervals[i], nil
		}
	}
	return nil, ierr.NewError("price interval not found").
		WithHintf("subscription %s has no price interval %s", subscriptionID, priceIntervalID).
		Mark(ierr.ErrNotFound)
}

// replaceTransitions pushes the complete transition list to the
// provider. The provider replaces the full set per interval, so the
// list must always be the entire desired state, never a delta.
func (s *subscriptionService) replaceTransitions(
	ctx context.Context,
	subscriptionID, priceIntervalID string,
	transitions []subscription.FixedFeeQuantityTransition,
) error {
	return s.BillingClient.EditPriceInterval(ctx, subscriptionID, billing.PriceIntervalEdit{
		PriceIntervalID:             priceIntervalID,
		FixedFeeQuantityTransitions: transitions,
	})
}
