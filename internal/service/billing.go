package service

import (
	"context"
	"sort"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
)

// BillingService merges the provider payment ledger with
// provider-reported invoices into one chronological history, and creates
// ad-hoc invoices
type BillingService interface {
	GetBillingHistory(ctx context.Context, accountID string, limit int) (*dto.BillingHistoryResponse, error)
	GenerateCustomInvoice(ctx context.Context, accountID string, req dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error)
}

type billingService struct {
	ServiceParams
}

func NewBillingService(params ServiceParams) BillingService {
	return &billingService{
		ServiceParams: params,
	}
}

func (s *billingService) GetBillingHistory(ctx context.Context, accountID string, limit int) (*dto.BillingHistoryResponse, error) {
	if limit <= 0 {
		limit = s.Config.Billing.DefaultHistoryLimit
	}

	// the payment ledger is ground truth; a failure here fails the call
	records, err := s.BillingProvider.GetPaymentHistory(ctx, accountID, limit)
	if err != nil {
		return nil, err
	}

	// invoices are only reported for accounts with an external
	// subscription; a fetch failure degrades to zero invoice records
	p, err := s.ProfileRepo.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if p.Subscription != nil && p.Subscription.SubscriptionID != nil {
		invoices, err := s.BillingProvider.ListInvoices(ctx, *p.Subscription.SubscriptionID, limit)
		if err != nil {
			s.Logger.Warnw("failed to fetch provider invoices, returning payments only",
				"account_id", accountID,
				"subscription_id", *p.Subscription.SubscriptionID,
				"error", err)
		} else {
			records = append(records, invoices...)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].SortKey().After(records[j].SortKey())
	})

	if len(records) > limit {
		records = records[:limit]
	}

	return &dto.BillingHistoryResponse{
		Items: records,
		Count: len(records),
	}, nil
}

func (s *billingService) GenerateCustomInvoice(ctx context.Context, accountID string, req dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	daysUntilDue := req.DaysUntilDue
	if daysUntilDue == 0 {
		daysUntilDue = 30
	}

	invoiceID, err := s.BillingProvider.CreateInvoice(ctx, accountID, req.Memo, daysUntilDue)
	if err != nil {
		return nil, err
	}

	for _, item := range req.ToItems() {
		if err := s.BillingProvider.AddInvoiceItem(ctx, accountID, invoiceID, item); err != nil {
			return nil, err
		}
	}

	invoice, err := s.BillingProvider.FinalizeInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	// sending is best-effort once the invoice is finalized
	if err := s.BillingProvider.SendInvoice(ctx, invoiceID); err != nil {
		s.Logger.Warnw("failed to send invoice, invoice remains finalized",
			"account_id", accountID,
			"invoice_id", invoiceID,
			"error", err)
	}

	s.Logger.Infow("custom invoice generated",
		"account_id", accountID,
		"invoice_id", invoice.ID,
		"total", invoice.Total)

	return &dto.InvoiceResponse{Invoice: invoice}, nil
}
