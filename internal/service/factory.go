package service

import (
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/config"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/billing"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/profile"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/publisher"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Catalog is the immutable plan table, constructed once at process
	// start
	Catalog *plan.Catalog

	// Collaborators
	ProfileRepo     profile.Repository
	BillingProvider billing.Provider

	// Publisher delivers post-commit lifecycle events
	Publisher publisher.Publisher
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	catalog *plan.Catalog,
	profileRepo profile.Repository,
	billingProvider billing.Provider,
	eventPublisher publisher.Publisher,
) ServiceParams {
	return ServiceParams{
		Logger:          logger,
		Config:          config,
		Catalog:         catalog,
		ProfileRepo:     profileRepo,
		BillingProvider: billingProvider,
		Publisher:       eventPublisher,
	}
}
