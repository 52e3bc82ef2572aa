package api

import (
	v1 "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/v1"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Plan         *v1.PlanHandler
	Subscription *v1.SubscriptionHandler
	Usage        *v1.UsageHandler
	Billing      *v1.BillingHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestContext())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Plan catalog routes
	plans := router.Group("/plans")
	{
		plans.GET("", handlers.Plan.ListPlans)
		plans.GET("/:id", handlers.Plan.GetPlan)
	}

	// Subscription lifecycle routes
	subscription := router.Group("/subscription")
	{
		subscription.GET("", handlers.Subscription.GetCurrentSubscription)
		subscription.PUT("", handlers.Subscription.ChangeSubscription)
		subscription.DELETE("", handlers.Subscription.CancelSubscription)
	}

	// Usage routes
	usage := router.Group("/usage")
	{
		usage.GET("", handlers.Usage.GetUsageSnapshot)
		usage.GET("/limits/:action", handlers.Usage.CheckUsageLimit)
	}

	// Billing routes
	billing := router.Group("/billing")
	{
		billing.GET("/history", handlers.Billing.GetBillingHistory)
		billing.POST("/invoices", handlers.Billing.GenerateCustomInvoice)
	}
}
