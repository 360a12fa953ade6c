package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/buildhaven/billing-dashboard/internal/api/dto"
	"github.com/buildhaven/billing-dashboard/internal/integration/billing"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// EventsService builds usage-event payloads and forwards them to the
// provider's ingest endpoint. Used by the dashboard's test-traffic
// tooling; the builders are intentionally simple.
type EventsService interface {
	IngestEvents(ctx context.Context, req dto.IngestEventsRequest) (*dto.IngestEventsResponse, error)
}

type eventsService struct {
	ServiceParams
}

func NewEventsService(params ServiceParams) EventsService {
	return &eventsService{ServiceParams: params}
}

func (s *eventsService) IngestEvents(ctx context.Context, req dto.IngestEventsRequest) (*dto.IngestEventsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}

	events := make([]billing.UsageEvent, 0, count)
	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		event := billing.UsageEvent{
			IdempotencyKey: types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
			CustomerID:     req.CustomerID,
			EventName:      req.EventName,
			Timestamp:      now,
			Properties:     req.Properties,
		}
		// Generated batches get randomized timestamps across the last
		// hour and a size property, mimicking organic traffic
		if req.Count > 0 {
			event.Timestamp = now.Add(-time.Duration(rand.Intn(3600)) * time.Second)
			if event.Properties == nil {
				event.Properties = map[string]interface{}{
					"size": rand.Intn(100) + 1,
				}
			}
		}
		events = append(events, event)
	}

	if err := s.BillingClient.IngestEvents(ctx, events); err != nil {
		return nil, err
	}

	s.Logger.Debugw("ingested usage events",
		"customer_id", req.CustomerID,
		"event_name", req.EventName,
		"count", len(events),
	)
	return &dto.IngestEventsResponse{Ingested: len(events)}, nil
}
