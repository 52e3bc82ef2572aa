package service

import (
	"testing"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/profile"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/testutil"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SubscriptionService
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSubscriptionService(ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		Catalog:         s.GetCatalog(),
		ProfileRepo:     s.GetProfiles(),
		BillingProvider: s.GetProvider(),
		Publisher:       s.GetPublisher(),
	})
}

func (s *SubscriptionServiceSuite) seedProfile(sub *subscription.Subscription) {
	s.GetProfiles().AddProfile(&profile.Profile{
		ID:           testutil.DefaultAccountID,
		Email:        "founder@example.com",
		Name:         "Test Founder",
		Subscription: sub,
	})
}

func (s *SubscriptionServiceSuite) TestGetCurrentSubscriptionDefaultsToBasic() {
	s.seedProfile(nil)

	resp, err := s.service.GetCurrentSubscription(s.GetContext(), testutil.DefaultAccountID)
	s.NoError(err)
	s.Equal(types.PlanBasic, resp.Subscription.Plan)
	s.Equal(types.SubscriptionStatusActive, resp.Subscription.Status)
	s.True(resp.Active)
}

func (s *SubscriptionServiceSuite) TestGetCurrentSubscriptionUnknownAccount() {
	_, err := s.service.GetCurrentSubscription(s.GetContext(), "acc_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestChangeSubscriptionUnknownPlan() {
	s.seedProfile(nil)

	_, err := s.service.ChangeSubscription(s.GetContext(), testutil.DefaultAccountID, dto.ChangeSubscriptionRequest{
		Plan: "platinum",
	})
	s.Error(err)
	s.True(ierr.IsUnknownPlan(err))
	s.Zero(s.GetProvider().CallsTo("CreateSubscription"))
}

func (s *SubscriptionServiceSuite) TestUpgradeWithoutPaymentMethod() {
	s.seedProfile(nil)

	_, err := s.service.ChangeSubscription(s.GetContext(), testutil.DefaultAccountID, dto.ChangeSubscriptionRequest{
		Plan: "professional",
	})
	s.Error(err)
	s.True(ierr.IsPaymentMethodRequired(err))
	s.Zero(s.GetProvider().CallsTo("CreateSubscription"))

	// local state untouched
	p, gerr := s.GetProfiles().GetProfile(s.GetContext(), testutil.DefaultAccountID)
	s.NoError(gerr)
	s.Nil(p.Subscription)
}

func (s *SubscriptionServiceSuite) TestUpgradeCreatesExternalSubscription() {
	s.seedProfile(nil)

	resp, err := s.service.ChangeSubscription(s.GetContext(), testutil.DefaultAccountID, dto.ChangeSubscriptionRequest{
		Plan:            "professional",
		PaymentMethodID: lo.ToPtr("pm_card_visa"),
	})
	s.NoError(err)
	s.Equal(types.PlanProfessional, resp.Subscription.Plan)
	s.Equal(types.SubscriptionStatusActive, resp.Subscription.Status)
	s.NotNil(resp.Subscription.SubscriptionID)
	s.NotNil(resp.Subscription.UpgradeDate)
	s.True(resp.Active)

	s.Equal(1, s.GetProvider().CallsTo("CreateSubscription"))

	events := s.GetPublisher().EventsNamed(types.LifecycleEventPlanChanged)
	s.Len(events, 1)
	s.Equal(testutil.DefaultAccountID, events[0].AccountID)
}

func (s *SubscriptionServiceSuite) TestUpgradeProviderFailureLeavesStateUntouched() {
	s.seedProfile(nil)
	s.GetProvider().FailWith("CreateSubscription", ierr.NewError("card declined").
		Mark(ierr.ErrCollaboratorUnavailable))

	_, err := s.service.ChangeSubscription(s.GetContext(), testutil.DefaultAccountID, dto.ChangeSubscriptionRequest{
		Plan:            "professional",
		PaymentMethodID: lo.ToPtr("pm_card_visa"),
	})
	s.Error(err)

	p, gerr := s.GetProfiles().GetProfile(s.GetContext(), testutil.DefaultAccountID)
	s.NoError(gerr)
	s.Nil(p.Subscription)
	s.Empty(s.GetPublisher().Events())
}

func (s *SubscriptionServiceSuite) TestSamePaidPlanRejected() {
	s.seedProfile(&subscription.Subscription{
		Plan:           types.PlanProfessional,
		Status:         types.SubscriptionStatusActive,
		SubscriptionID: lo.ToPtr("sub_existing"),
	})

	_, err := s.service.ChangeSubscription(s.GetContext(), testutil.DefaultAccountID, dto.ChangeSubscriptionRequest{
		Plan: "professional",
	})
	s.Error(err)
	s.True(ierr.IsUnprocessableTransition(err))
}

func (s *SubscriptionServiceSuite) TestPaidToPaidUsesUpdate() {
	s.seedProfile(&subscription.Subscription{
		Plan:           types.PlanProfessional,
		Status:         types.SubscriptionStatusActive,
		SubscriptionID: lo.ToPtr("sub_existing"),
	})

	// no payment method needed when the external subscription already exists
	resp, err := s.service.ChangeSubscription(s.GetContext(), testutil.DefaultAccountID, dto.ChangeSubscriptionRequest{
		Plan: "enterprise",
	})
	s.NoError(err)
	s.Equal(types.PlanEnterprise, resp.Subscription.Plan)
	s.Equal("sub_existing", *resp.Subscription.SubscriptionID)

	s.Equal(1, s.GetProvider().CallsTo("UpdateSubscription"))
	s.Zero(s.GetProvider().CallsTo("CreateSubscription"))
	s.Zero(s.GetProvider().CallsTo("CancelSubscription"))
}

func (s *SubscriptionServiceSuite) TestDowngradeToBasicClearsExternalReference() {
	upgradeDate := time.Now().UTC().Add(-30 * 24 * time.Hour)
	s.seedProfile(&subscription.Subscription{
		Plan:           types.PlanProfessional,
		Status:         types.SubscriptionStatusActive,
		SubscriptionID: lo.ToPtr("sub_existing"),
		UpgradeDate:    &upgradeDate,
	})

	resp, err := s.service.ChangeSubscription(s.GetContext(), testutil.DefaultAccountID, dto.ChangeSubscriptionRequest{
		Plan: "basic",
	})
	s.NoError(err)
	s.Equal(types.PlanBasic, resp.Subscription.Plan)
	s.Nil(resp.Subscription.SubscriptionID)
	s.NotNil(resp.Subscription.DowngradeDate)
	s.Equal(upgradeDate, *resp.Subscription.UpgradeDate)

	s.Equal(1, s.GetProvider().CallsTo("CancelSubscription"))
	s.Zero(s.GetProvider().CallsTo("CreateSubscription"))

	events := s.GetPublisher().EventsNamed(types.LifecycleEventPlanChanged)
	s.Len(events, 1)
	s.Equal(true, events[0].Metadata["downgrade"])
}

func (s *SubscriptionServiceSuite) TestDowngradeProviderFailureLeavesStateUntouched() {
	s.seedProfile(&subscription.Subscription{
		Plan:           types.PlanProfessional,
		Status:         types.SubscriptionStatusActive,
		SubscriptionID: lo.ToPtr("sub_existing"),
	})
	s.GetProvider().FailWith("CancelSubscription", ierr.NewError("provider down").
		Mark(ierr.ErrCollaboratorUnavailable))

	_, err := s.service.ChangeSubscription(s.GetContext(), testutil.DefaultAccountID, dto.ChangeSubscriptionRequest{
		Plan: "basic",
	})
	s.Error(err)

	p, gerr := s.GetProfiles().GetProfile(s.GetContext(), testutil.DefaultAccountID)
	s.NoError(gerr)
	s.Equal(types.PlanProfessional, p.Subscription.Plan)
	s.NotNil(p.Subscription.SubscriptionID)
}

func (s *SubscriptionServiceSuite) TestCancelSubscription() {
	s.seedProfile(&subscription.Subscription{
		Plan:           types.PlanProfessional,
		Status:         types.SubscriptionStatusActive,
		SubscriptionID: lo.ToPtr("sub_existing"),
	})

	resp, err := s.service.CancelSubscription(s.GetContext(), testutil.DefaultAccountID, dto.CancelSubscriptionRequest{
		Reason: "too expensive",
	})
	s.NoError(err)
	s.Equal(types.SubscriptionStatusCancelled, resp.Subscription.Status)
	s.NotNil(resp.Subscription.CancelledAt)
	s.Equal("too expensive", *resp.Subscription.CancellationReason)
	s.False(resp.Active)

	s.Equal(1, s.GetProvider().CallsTo("CancelSubscription"))

	events := s.GetPublisher().EventsNamed(types.LifecycleEventSubscriptionCancelled)
	s.Len(events, 1)
}

func (s *SubscriptionServiceSuite) TestCancelProviderFailureLeavesStateUntouched() {
	s.seedProfile(&subscription.Subscription{
		Plan:           types.PlanProfessional,
		Status:         types.SubscriptionStatusActive,
		SubscriptionID: lo.ToPtr("sub_existing"),
	})
	s.GetProvider().FailWith("CancelSubscription", ierr.NewError("provider down").
		Mark(ierr.ErrCollaboratorUnavailable))

	_, err := s.service.CancelSubscription(s.GetContext(), testutil.DefaultAccountID, dto.CancelSubscriptionRequest{})
	s.Error(err)

	p, gerr := s.GetProfiles().GetProfile(s.GetContext(), testutil.DefaultAccountID)
	s.NoError(gerr)
	s.Equal(types.SubscriptionStatusActive, p.Subscription.Status)
	s.Nil(p.Subscription.CancelledAt)
	s.Empty(s.GetPublisher().Events())
}

func (s *SubscriptionServiceSuite) TestCancelAlreadyCancelled() {
	now := time.Now().UTC()
	s.seedProfile(&subscription.Subscription{
		Plan:        types.PlanProfessional,
		Status:      types.SubscriptionStatusCancelled,
		CancelledAt: &now,
	})

	_, err := s.service.CancelSubscription(s.GetContext(), testutil.DefaultAccountID, dto.CancelSubscriptionRequest{})
	s.Error(err)
	s.True(ierr.IsUnprocessableTransition(err))
	s.Zero(s.GetProvider().CallsTo("CancelSubscription"))
}

func (s *SubscriptionServiceSuite) TestCancelBasicSubscriptionSkipsProvider() {
	s.seedProfile(&subscription.Subscription{
		Plan:   types.PlanBasic,
		Status: types.SubscriptionStatusActive,
	})

	resp, err := s.service.CancelSubscription(s.GetContext(), testutil.DefaultAccountID, dto.CancelSubscriptionRequest{})
	s.NoError(err)
	s.Equal(types.SubscriptionStatusCancelled, resp.Subscription.Status)
	s.Zero(s.GetProvider().CallsTo("CancelSubscription"))
}
