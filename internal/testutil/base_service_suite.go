package testutil

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/config"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/validator"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides common functionality for service test
// suites: an in-memory profile store, a fake billing provider, a recording
// publisher, and the default plan catalog.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	profiles  *InMemoryProfileStore
	provider  *FakeBillingProvider
	publisher *InMemoryPublisher
	catalog   *plan.Catalog
	logger    *logger.Logger
	config    *config.Configuration
	now       time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()
	var err error
	s.logger, err = logger.NewLogger(s.config)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
	s.catalog = plan.DefaultCatalog()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.profiles = NewInMemoryProfileStore()
	s.provider = NewFakeBillingProvider()
	s.publisher = NewInMemoryPublisher()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.profiles.Clear()
	s.provider.Clear()
	s.publisher.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetProfiles() *InMemoryProfileStore {
	return s.profiles
}

func (s *BaseServiceTestSuite) GetProvider() *FakeBillingProvider {
	return s.provider
}

func (s *BaseServiceTestSuite) GetPublisher() *InMemoryPublisher {
	return s.publisher
}

func (s *BaseServiceTestSuite) GetCatalog() *plan.Catalog {
	return s.catalog
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
