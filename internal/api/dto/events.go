package dto

import (
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/validator"
)

// IngestEventsRequest builds and sends usage events to the provider's
// ingest endpoint, either one manual event or a batch of generated
// ones
type IngestEventsRequest struct {
	CustomerID string                 `json:"customer_id" binding:"required"`
	EventName  string                 `json:"event_name" binding:"required"`
	Properties map[string]interface{} `json:"properties,omitempty"`

	// Count generates that many randomized events instead of a single
	// manual one
	Count int `json:"count,omitempty"`
}

func (r *IngestEventsRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Count < 0 || r.Count > 1000 {
		return ierr.NewError("count out of range").
			WithHint("Count must be between 0 and 1000").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IngestEventsResponse reports how many events were sent
type IngestEventsResponse struct {
	Ingested int `json:"ingested"`
}
