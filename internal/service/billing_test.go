package service

import (
	"testing"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/billing"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/profile"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/testutil"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BillingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service BillingService
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewBillingService(ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		Catalog:         s.GetCatalog(),
		ProfileRepo:     s.GetProfiles(),
		BillingProvider: s.GetProvider(),
		Publisher:       s.GetPublisher(),
	})
}

func (s *BillingServiceSuite) seedSubscribedProfile() {
	s.GetProfiles().AddProfile(&profile.Profile{
		ID:    testutil.DefaultAccountID,
		Email: "founder@example.com",
		Subscription: &subscription.Subscription{
			Plan:           types.PlanProfessional,
			Status:         types.SubscriptionStatusActive,
			SubscriptionID: lo.ToPtr("sub_existing"),
		},
	})
}

func paymentRecord(id string, paidAt time.Time) *billing.Record {
	return &billing.Record{
		ID:        id,
		Amount:    decimal.NewFromFloat(29.99),
		Currency:  "usd",
		Status:    "succeeded",
		PaidAt:    &paidAt,
		CreatedAt: paidAt,
		Source:    types.BillingRecordSourcePayment,
	}
}

func invoiceRecord(id string, createdAt time.Time) *billing.Record {
	return &billing.Record{
		ID:        id,
		Amount:    decimal.NewFromFloat(29.99),
		Currency:  "usd",
		Status:    "paid",
		CreatedAt: createdAt,
		Source:    types.BillingRecordSourceInvoice,
	}
}

func (s *BillingServiceSuite) TestHistoryMergesNewestFirst() {
	s.seedSubscribedProfile()

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	s.GetProvider().Payments = []*billing.Record{
		paymentRecord("ch_jan", jan),
		paymentRecord("ch_mar", mar),
	}
	s.GetProvider().Invoices = []*billing.Record{
		invoiceRecord("in_feb", feb),
	}

	resp, err := s.service.GetBillingHistory(s.GetContext(), testutil.DefaultAccountID, 10)
	s.NoError(err)
	s.Equal(3, resp.Count)
	s.Equal("ch_mar", resp.Items[0].ID)
	s.Equal("in_feb", resp.Items[1].ID)
	s.Equal("ch_jan", resp.Items[2].ID)
}

func (s *BillingServiceSuite) TestHistoryTruncatesToLimit() {
	s.seedSubscribedProfile()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.GetProvider().Payments = append(s.GetProvider().Payments,
			paymentRecord("ch_"+string(rune('a'+i)), base.AddDate(0, i, 0)))
	}

	resp, err := s.service.GetBillingHistory(s.GetContext(), testutil.DefaultAccountID, 2)
	s.NoError(err)
	s.Equal(2, resp.Count)
	s.Equal("ch_e", resp.Items[0].ID)
	s.Equal("ch_d", resp.Items[1].ID)
}

func (s *BillingServiceSuite) TestHistoryDefaultsLimitFromConfig() {
	s.seedSubscribedProfile()

	_, err := s.service.GetBillingHistory(s.GetContext(), testutil.DefaultAccountID, 0)
	s.NoError(err)
	s.Equal(1, s.GetProvider().CallsTo("GetPaymentHistory"))
}

func (s *BillingServiceSuite) TestHistoryDegradesWhenInvoicesUnavailable() {
	s.seedSubscribedProfile()

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.GetProvider().Payments = []*billing.Record{paymentRecord("ch_jan", jan)}
	s.GetProvider().FailWith("ListInvoices", ierr.NewError("provider timeout").
		Mark(ierr.ErrCollaboratorUnavailable))

	resp, err := s.service.GetBillingHistory(s.GetContext(), testutil.DefaultAccountID, 10)
	s.NoError(err)
	s.Equal(1, resp.Count)
	s.Equal("ch_jan", resp.Items[0].ID)
}

func (s *BillingServiceSuite) TestHistoryFailsWhenPaymentsUnavailable() {
	s.seedSubscribedProfile()
	s.GetProvider().FailWith("GetPaymentHistory", ierr.NewError("provider down").
		Mark(ierr.ErrCollaboratorUnavailable))

	_, err := s.service.GetBillingHistory(s.GetContext(), testutil.DefaultAccountID, 10)
	s.Error(err)
	s.True(ierr.IsCollaboratorUnavailable(err))
}

func (s *BillingServiceSuite) TestHistorySkipsInvoicesWithoutSubscription() {
	s.GetProfiles().AddProfile(&profile.Profile{
		ID:    testutil.DefaultAccountID,
		Email: "founder@example.com",
	})

	resp, err := s.service.GetBillingHistory(s.GetContext(), testutil.DefaultAccountID, 10)
	s.NoError(err)
	s.Equal(0, resp.Count)
	s.Zero(s.GetProvider().CallsTo("ListInvoices"))
}

func (s *BillingServiceSuite) TestGenerateCustomInvoice() {
	s.seedSubscribedProfile()

	resp, err := s.service.GenerateCustomInvoice(s.GetContext(), testutil.DefaultAccountID, dto.GenerateInvoiceRequest{
		Items: []dto.InvoiceItemRequest{
			{Description: "Advisory services", Amount: decimal.NewFromFloat(150)},
			{Description: "Due diligence report", Amount: decimal.NewFromFloat(75.50)},
		},
		Memo: "Consulting for Q1",
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)

	s.Equal(1, s.GetProvider().CallsTo("CreateInvoice"))
	s.Equal(2, s.GetProvider().CallsTo("AddInvoiceItem"))
	s.Equal(1, s.GetProvider().CallsTo("FinalizeInvoice"))
	s.Equal(1, s.GetProvider().CallsTo("SendInvoice"))
}

func (s *BillingServiceSuite) TestGenerateCustomInvoiceRequiresItems() {
	s.seedSubscribedProfile()

	_, err := s.service.GenerateCustomInvoice(s.GetContext(), testutil.DefaultAccountID, dto.GenerateInvoiceRequest{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Zero(s.GetProvider().CallsTo("CreateInvoice"))
}

func (s *BillingServiceSuite) TestGenerateCustomInvoiceRejectsNonPositiveAmounts() {
	s.seedSubscribedProfile()

	_, err := s.service.GenerateCustomInvoice(s.GetContext(), testutil.DefaultAccountID, dto.GenerateInvoiceRequest{
		Items: []dto.InvoiceItemRequest{
			{Description: "Refund line", Amount: decimal.NewFromFloat(-10)},
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *BillingServiceSuite) TestGenerateCustomInvoiceSendFailureIsNotFatal() {
	s.seedSubscribedProfile()
	s.GetProvider().FailWith("SendInvoice", ierr.NewError("email bounce").
		Mark(ierr.ErrCollaboratorUnavailable))

	resp, err := s.service.GenerateCustomInvoice(s.GetContext(), testutil.DefaultAccountID, dto.GenerateInvoiceRequest{
		Items: []dto.InvoiceItemRequest{
			{Description: "Advisory services", Amount: decimal.NewFromFloat(150)},
		},
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
}
