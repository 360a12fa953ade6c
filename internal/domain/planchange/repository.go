package planchange

import (
	"context"
)

// Repository is the local persisted store of scheduled plan changes,
// keyed by subscription id
type Repository interface {
	// Get returns the cached record for a subscription, or a not
	// found error
	Get(ctx context.Context, subscriptionID string) (*ScheduledPlanChange, error)

	// Set stores the record for its subscription id, replacing any
	// existing one
	Set(ctx context.Context, change *ScheduledPlanChange) error

	// Delete removes the record for a subscription. Deleting a
	// missing record is a no-op, not an error, so concurrent purge
	// signals stay idempotent.
	Delete(ctx context.Context, subscriptionID string) error
}
