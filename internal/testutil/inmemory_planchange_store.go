package testutil

import (
	"context"
	"sync"

	"github.com/buildhaven/billing-dashboard/internal/domain/planchange"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
)

// InMemoryPlanChangeStore implements planchange.Repository over a
// plain map for tests
type InMemoryPlanChangeStore struct {
	mu      sync.RWMutex
	records map[string]*planchange.ScheduledPlanChange
}

func NewInMemoryPlanChangeStore() *InMemoryPlanChangeStore {
	return &InMemoryPlanChangeStore{
		records: make(map[string]*planchange.ScheduledPlanChange),
	}
}

func (s *InMemoryPlanChangeStore) Get(_ context.Context, subscriptionID string) (*planchange.ScheduledPlanChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	change, ok := s.records[subscriptionID]
	if !ok {
		return nil, ierr.NewError("no scheduled plan change").
			WithHintf("no plan change is scheduled for subscription %s", subscriptionID).
			Mark(ierr.ErrNotFound)
	}
	return change, nil
}

func (s *InMemoryPlanChangeStore) Set(_ context.Context, change *planchange.ScheduledPlanChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[change.SubscriptionID] = change
	return nil
}

func (s *InMemoryPlanChangeStore) Delete(_ context.Context, subscriptionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, subscriptionID)
	return nil
}

// Clear drops all records between tests
func (s *InMemoryPlanChangeStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*planchange.ScheduledPlanChange)
}
