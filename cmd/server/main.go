package main

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api"
	v1 "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/v1"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/config"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/billing"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/integration/stripe"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/publisher"
	repo "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/repository/mongo"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/service"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/validator"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Mongo
			repo.NewClient,
			repo.NewDatabase,

			// Plan catalog
			plan.DefaultCatalog,

			// Repositories
			repo.NewProfileRepository,

			// Billing provider
			provideBillingProvider,

			// Lifecycle events
			publisher.NewDispatcher,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewPlanService,
			service.NewUsageService,
			service.NewSubscriptionService,
			service.NewBillingService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideBillingProvider(cfg *config.Configuration, log *logger.Logger) (billing.Provider, error) {
	return stripe.NewProvider(cfg, log)
}

func provideHandlers(
	logger *logger.Logger,
	planService service.PlanService,
	subscriptionService service.SubscriptionService,
	usageService service.UsageService,
	billingService service.BillingService,
) api.Handlers {
	return api.Handlers{
		Plan:         v1.NewPlanHandler(planService, logger),
		Subscription: v1.NewSubscriptionHandler(subscriptionService, logger),
		Usage:        v1.NewUsageHandler(usageService, logger),
		Billing:      v1.NewBillingHandler(billingService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	client *mongo.Client,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return client.Disconnect(ctx)
		},
	})
}
