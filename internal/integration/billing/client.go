package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/buildhaven/billing-dashboard/internal/config"
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
	"github.com/buildhaven/billing-dashboard/internal/httpclient"
	"github.com/buildhaven/billing-dashboard/internal/logger"

	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
)

// Client is the subscription-billing provider's REST API surface as
// this dashboard consumes it
type Client interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
	CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*subscription.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*subscription.Subscription, error)
	ListSubscriptions(ctx context.Context, customerID string) ([]subscription.Subscription, error)

	// EditPriceInterval replaces the interval's full transition list;
	// the provider does not patch transition sets
	EditPriceInterval(ctx context.Context, subscriptionID string, edit PriceIntervalEdit) error

	SchedulePlanChange(ctx context.Context, subscriptionID string, req SchedulePlanChangeRequest) error
	CancelPlanChange(ctx context.Context, subscriptionID string) error

	IngestEvents(ctx context.Context, events []UsageEvent) error
}

type client struct {
	cfg     config.BillingConfig
	http    httpclient.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates a provider client honoring the configured request
// rate limit
func NewClient(cfg *config.Configuration, http httpclient.Client, log *logger.Logger) Client {
	rps := cfg.Billing.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	return &client{
		cfg:     cfg.Billing,
		http:    http,
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)),
		log:     log,
	}
}

func (c *client) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	var customer Customer
	if err := c.do(ctx, http.MethodPost, "/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *client) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*subscription.Subscription, error) {
	var sub subscription.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *client) GetSubscription(ctx context.Context, subscriptionID string) (*subscription.Subscription, error) {
	var sub subscription.Subscription
	path := "/subscriptions/" + url.PathEscape(subscriptionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *client) ListSubscriptions(ctx context.Context, customerID string) ([]subscription.Subscription, error) {
	var resp subscriptionsResponse
	path := "/subscriptions?customer_id=" + url.QueryEscape(customerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *client) EditPriceInterval(ctx context.Context, subscriptionID string, edit PriceIntervalEdit) error {
	path := fmt.Sprintf("/subscriptions/%s/price_intervals", url.PathEscape(subscriptionID))
	return c.do(ctx, http.MethodPost, path, EditPriceIntervalRequest{Edits: []PriceIntervalEdit{edit}}, nil)
}

func (c *client) SchedulePlanChange(ctx context.Context, subscriptionID string, req SchedulePlanChangeRequest) error {
	path := fmt.Sprintf("/subscriptions/%s/schedule_plan_change", url.PathEscape(subscriptionID))
	return c.do(ctx, http.MethodPost, path, req, nil)
}

func (c *client) CancelPlanChange(ctx context.Context, subscriptionID string) error {
	path := fmt.Sprintf("/subscriptions/%s/unschedule_pending_plan_changes", url.PathEscape(subscriptionID))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *client) IngestEvents(ctx context.Context, events []UsageEvent) error {
	return c.do(ctx, http.MethodPost, "/ingest", ingestRequest{Events: events}, nil)
}

// do runs one provider call: rate limit, marshal, send, decode
func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return ierr.WithError(err).
			WithHint("The request was cancelled before it could be sent").
			Mark(ierr.ErrHTTPClient)
	}

	req := &httpclient.Request{
		Method: method,
		URL:    c.cfg.APIURL + path,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.cfg.APIKey,
		},
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Please check the request payload").
				Mark(ierr.ErrValidation)
		}
		req.Body = payload
	}

	resp, err := c.http.Send(ctx, req)
	if err != nil {
		if httpErr, ok := httpclient.IsHTTPError(err); ok {
			c.log.Warnw("billing provider returned an error",
				"method", method,
				"path", path,
				"status", httpErr.StatusCode,
			)
			if httpErr.StatusCode == http.StatusNotFound {
				return ierr.WithError(err).
					WithHint("The requested billing record does not exist").
					Mark(ierr.ErrNotFound)
			}
		}
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return ierr.WithError(err).
			WithHint("The billing provider returned an unexpected response shape").
			Mark(ierr.ErrHTTPClient)
	}
	return nil
}
