package planchange

import (
	"context"

	"github.com/buildhaven/billing-dashboard/internal/cache"
	domainPlanChange "github.com/buildhaven/billing-dashboard/internal/domain/planchange"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/logger"
)

// store keeps scheduled plan changes in the local cache, one record
// per subscription id. Records never expire on their own: they are
// removed explicitly on cancel or when reconciliation detects the
// change has taken effect.
type store struct {
	cache cache.Cache
	log   *logger.Logger
}

func NewRepository(c cache.Cache, log *logger.Logger) domainPlanChange.Repository {
	return &store{cache: c, log: log}
}

func (s *store) Get(ctx context.Context, subscriptionID string) (*domainPlanChange.ScheduledPlanChange, error) {
	value, found := s.cache.Get(ctx, s.key(subscriptionID))
	if !found {
		return nil, ierr.NewError("no scheduled plan change").
			WithHintf("no plan change is scheduled for subscription %s", subscriptionID).
			Mark(ierr.ErrNotFound)
	}

	change, ok := value.(*domainPlanChange.ScheduledPlanChange)
	if !ok {
		return nil, ierr.NewError("unexpected cache entry type").
			WithHint("The stored plan change record could not be read").
			Mark(ierr.ErrSystem)
	}
	return change, nil
}

func (s *store) Set(ctx context.Context, change *domainPlanChange.ScheduledPlanChange) error {
	if change == nil || change.SubscriptionID == "" {
		return ierr.NewError("plan change record requires a subscription id").
			WithHint("Subscription ID is required").
			Mark(ierr.ErrValidation)
	}
	s.cache.Set(ctx, s.key(change.SubscriptionID), change, cache.NoExpiration)
	return nil
}

// Delete is idempotent: removing an absent record is a no-op so
// concurrent purge signals cannot fail each other
func (s *store) Delete(ctx context.Context, subscriptionID string) error {
	s.cache.Delete(ctx, s.key(subscriptionID))
	return nil
}

func (s *store) key(subscriptionID string) string {
	return cache.GenerateKey(cache.PrefixPlanChange, subscriptionID)
}
