package service

import (
	"testing"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/profile"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/testutil"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/stretchr/testify/suite"
)

type UsageServiceSuite struct {
	testutil.BaseServiceTestSuite
	service UsageService
}

func TestUsageService(t *testing.T) {
	suite.Run(t, new(UsageServiceSuite))
}

func (s *UsageServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewUsageService(ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		Catalog:         s.GetCatalog(),
		ProfileRepo:     s.GetProfiles(),
		BillingProvider: s.GetProvider(),
		Publisher:       s.GetPublisher(),
	})
}

func (s *UsageServiceSuite) seedProfile(p types.PlanID) {
	s.GetProfiles().AddProfile(&profile.Profile{
		ID:    testutil.DefaultAccountID,
		Email: "founder@example.com",
		Subscription: &subscription.Subscription{
			Plan:   p,
			Status: types.SubscriptionStatusActive,
		},
	})
}

func (s *UsageServiceSuite) TestGetUsageSnapshot() {
	s.seedProfile(types.PlanBasic)
	s.GetProfiles().SetUsage(testutil.DefaultAccountID, 1, 3, 0.4)

	resp, err := s.service.GetUsageSnapshot(s.GetContext(), testutil.DefaultAccountID)
	s.NoError(err)
	s.Equal(int64(1), resp.BusinessProfiles)
	s.Equal(int64(3), resp.MonthlyInvestments)
	s.Equal(0.4, resp.StorageGB)
	s.Equal(testutil.DefaultAccountID, resp.AccountID)
}

func (s *UsageServiceSuite) TestCheckLimitBelowAllows() {
	s.seedProfile(types.PlanBasic)
	s.GetProfiles().SetUsage(testutil.DefaultAccountID, 0, 0, 0)

	resp, err := s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitActionCreateBusinessProfile)
	s.NoError(err)
	s.True(resp.Allowed)
	s.False(resp.Unlimited)
	s.Equal(float64(1), resp.Limit)
	s.Equal(float64(0), resp.Current)
}

func (s *UsageServiceSuite) TestCheckLimitAtLimitBlocks() {
	// basic allows 1 business profile; holding 1 blocks the next
	s.seedProfile(types.PlanBasic)
	s.GetProfiles().SetUsage(testutil.DefaultAccountID, 1, 0, 0)

	resp, err := s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitActionCreateBusinessProfile)
	s.NoError(err)
	s.False(resp.Allowed)
	s.Equal(float64(1), resp.Limit)
	s.Equal(float64(1), resp.Current)
}

func (s *UsageServiceSuite) TestCheckLimitUnlimitedShortCircuits() {
	// enterprise business profiles are unlimited; absurd usage still allows
	s.seedProfile(types.PlanEnterprise)
	s.GetProfiles().SetUsage(testutil.DefaultAccountID, 1_000_000, 1_000_000, 0)

	resp, err := s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitActionCreateBusinessProfile)
	s.NoError(err)
	s.True(resp.Allowed)
	s.True(resp.Unlimited)
}

func (s *UsageServiceSuite) TestCheckLimitStorageBoundary() {
	// professional allows 25 GB; exactly 25 blocks further uploads
	s.seedProfile(types.PlanProfessional)
	s.GetProfiles().SetUsage(testutil.DefaultAccountID, 0, 0, 25)

	resp, err := s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitActionUploadFile)
	s.NoError(err)
	s.False(resp.Allowed)

	s.GetProfiles().SetUsage(testutil.DefaultAccountID, 0, 0, 24.9)
	resp, err = s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitActionUploadFile)
	s.NoError(err)
	s.True(resp.Allowed)
}

func (s *UsageServiceSuite) TestCheckLimitUnmeteredAction() {
	s.seedProfile(types.PlanBasic)

	resp, err := s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitActionAPICall)
	s.NoError(err)
	s.True(resp.Allowed)
	s.True(resp.Unlimited)
}

func (s *UsageServiceSuite) TestCheckLimitUnknownAction() {
	s.seedProfile(types.PlanBasic)

	_, err := s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitAction("launch_rocket"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *UsageServiceSuite) TestCheckLimitFailsClosedWhenCountsUnavailable() {
	s.seedProfile(types.PlanBasic)
	s.GetProfiles().FailWith("CountBusinessProfiles", ierr.NewError("connection reset").
		Mark(ierr.ErrDatabase))

	_, err := s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitActionCreateBusinessProfile)
	s.Error(err)
	s.True(ierr.IsUsageUnavailable(err))
}

func (s *UsageServiceSuite) TestSnapshotFailsClosedOnStorageError() {
	s.seedProfile(types.PlanBasic)
	s.GetProfiles().FailWith("StorageUsedGB", ierr.NewError("aggregation failed").
		Mark(ierr.ErrDatabase))

	_, err := s.service.GetUsageSnapshot(s.GetContext(), testutil.DefaultAccountID)
	s.Error(err)
	s.True(ierr.IsUsageUnavailable(err))
}

func (s *UsageServiceSuite) TestCheckLimitDefaultsToBasicForNewAccounts() {
	s.GetProfiles().AddProfile(&profile.Profile{
		ID:    testutil.DefaultAccountID,
		Email: "founder@example.com",
	})
	s.GetProfiles().SetUsage(testutil.DefaultAccountID, 1, 0, 0)

	resp, err := s.service.CheckUsageLimit(s.GetContext(), testutil.DefaultAccountID, types.LimitActionCreateBusinessProfile)
	s.NoError(err)
	s.Equal(types.PlanBasic, resp.Plan)
	s.False(resp.Allowed)
}
