package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/buildhaven/billing-dashboard/internal/api"
	v1 "github.com/buildhaven/billing-dashboard/internal/api/v1"
	"github.com/buildhaven/billing-dashboard/internal/cache"
	"github.com/buildhaven/billing-dashboard/internal/config"
	"github.com/buildhaven/billing-dashboard/internal/httpclient"
	"github.com/buildhaven/billing-dashboard/internal/integration/billing"
	"github.com/buildhaven/billing-dashboard/internal/logger"
	planchangeRepo "github.com/buildhaven/billing-dashboard/internal/repository/planchange"
	"github.com/buildhaven/billing-dashboard/internal/service"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

func init() {
	// Effective-date comparisons assume UTC calendar days everywhere
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// HTTP client and billing provider
			provideHTTPClient,
			billing.NewClient,

			// Repositories
			planchangeRepo.NewRepository,

			// Services
			service.NewServiceParams,
			service.NewCustomerService,
			service.NewSubscriptionService,
			service.NewPlanChangeService,
			service.NewEventsService,

			// Handlers
			v1.NewHealthHandler,
			v1.NewCustomerHandler,
			v1.NewSubscriptionHandler,
			v1.NewPlanChangeHandler,
			v1.NewEventsHandler,
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHTTPClient(cfg *config.Configuration) httpclient.Client {
	return httpclient.NewRetryableClient(cfg.Billing.Timeout)
}

func provideHandlers(
	health *v1.HealthHandler,
	customer *v1.CustomerHandler,
	subscription *v1.SubscriptionHandler,
	planChange *v1.PlanChangeHandler,
	events *v1.EventsHandler,
) api.Handlers {
	return api.Handlers{
		Health:       health,
		Customer:     customer,
		Subscription: subscription,
		PlanChange:   planChange,
		Events:       events,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	log *logger.Logger,
) {
	if cfg.Deployment.Mode == types.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting billing dashboard server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping billing dashboard server")
			return srv.Shutdown(ctx)
		},
	})
}
