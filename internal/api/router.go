package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/buildhaven/billing-dashboard/internal/api/v1"
	"github.com/buildhaven/billing-dashboard/internal/rest/middleware"
)

// Handlers bundles the v1 route handlers
type Handlers struct {
	Health       *v1.HealthHandler
	Customer     *v1.CustomerHandler
	Subscription *v1.SubscriptionHandler
	PlanChange   *v1.PlanChangeHandler
	Events       *v1.EventsHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	customers := router.Group("/customers")
	{
		customers.POST("", handlers.Customer.CreateCustomer)
		customers.GET("/:id/entitlements", handlers.Subscription.GetCustomerEntitlements)
	}

	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.POST("", handlers.Customer.CreateSubscription)

		subscriptions.POST("/:id/transitions", handlers.Subscription.ScheduleTransition)
		subscriptions.DELETE("/:id/transitions/:date", handlers.Subscription.RemoveTransition)

		subscriptions.POST("/:id/plan-change", handlers.PlanChange.SchedulePlanChange)
		subscriptions.GET("/:id/plan-change", handlers.PlanChange.GetScheduledPlanChange)
		subscriptions.DELETE("/:id/plan-change", handlers.PlanChange.CancelPlanChange)
	}

	events := router.Group("/events")
	{
		events.POST("", handlers.Events.IngestEvents)
	}
}
