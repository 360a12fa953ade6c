package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/buildhaven/billing-dashboard/internal/config"
	"github.com/buildhaven/billing-dashboard/internal/logger"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// Stores holds the repository fakes for testing
type Stores struct {
	PlanChangeRepo *InMemoryPlanChangeStore
}

// BaseServiceTestSuite provides common functionality for all service
// test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	stores        Stores
	billingClient *MockBillingClient
	logger        *logger.Logger
	config        *config.Configuration
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	s.config = config.GetDefaultConfig()
	s.logger = logger.GetLogger()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.WithValue(context.Background(), types.CtxRequestID, types.GenerateUUID())
	s.stores = Stores{
		PlanChangeRepo: NewInMemoryPlanChangeStore(),
	}
	s.billingClient = NewMockBillingClient()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.PlanChangeRepo.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetBillingClient() *MockBillingClient {
	return s.billingClient
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}
