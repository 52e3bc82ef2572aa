package stripe

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/billing"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// GetPaymentHistory returns the provider's charge ledger for the account,
// most recent first. An account with no billing customer yet has an empty
// ledger.
func (p *Provider) GetPaymentHistory(ctx context.Context, accountID string, limit int) ([]*billing.Record, error) {
	customer, err := p.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return []*billing.Record{}, nil
	}

	params := &stripe.ChargeListParams{
		Customer: stripe.String(customer.ID),
	}
	params.Limit = stripe.Int64(int64(limit))

	records := make([]*billing.Record, 0, limit)
	for charge, err := range p.api.V1Charges.List(ctx, params) {
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Unable to load payment history from the payment provider").
				Mark(ierr.ErrCollaboratorUnavailable)
		}
		records = append(records, chargeToRecord(charge))
	}

	return records, nil
}

// ListInvoices returns provider-reported invoices for the external
// subscription, most recent first
func (p *Provider) ListInvoices(ctx context.Context, subscriptionID string, limit int) ([]*billing.Record, error) {
	params := &stripe.InvoiceListParams{
		Subscription: stripe.String(subscriptionID),
	}
	params.Limit = stripe.Int64(int64(limit))

	records := make([]*billing.Record, 0, limit)
	for invoice, err := range p.api.V1Invoices.List(ctx, params) {
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Unable to load invoices from the payment provider").
				Mark(ierr.ErrCollaboratorUnavailable)
		}
		records = append(records, invoiceToRecord(invoice))
	}

	return records, nil
}

// CreateInvoice opens a draft invoice for the account
func (p *Provider) CreateInvoice(ctx context.Context, accountID string, memo string, daysUntilDue int) (string, error) {
	customerID, err := p.ensureCustomer(ctx, accountID)
	if err != nil {
		return "", err
	}

	params := &stripe.InvoiceCreateParams{
		Customer:         stripe.String(customerID),
		Description:      stripe.String(memo),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:     stripe.Int64(int64(daysUntilDue)),
		Metadata: map[string]string{
			"account_id": accountID,
		},
	}

	invoice, err := p.api.V1Invoices.Create(ctx, params)
	if err != nil {
		p.logger.Errorw("failed to create stripe invoice",
			"account_id", accountID,
			"error", err)
		return "", ierr.WithError(err).
			WithHint("Unable to create the invoice with the payment provider").
			Mark(ierr.ErrCollaboratorUnavailable)
	}

	return invoice.ID, nil
}

// AddInvoiceItem appends a line item to a draft invoice
func (p *Provider) AddInvoiceItem(ctx context.Context, accountID string, invoiceID string, item billing.InvoiceItem) error {
	customerID, err := p.ensureCustomer(ctx, accountID)
	if err != nil {
		return err
	}

	params := &stripe.InvoiceItemCreateParams{
		Customer:    stripe.String(customerID),
		Invoice:     stripe.String(invoiceID),
		Description: stripe.String(item.Description),
		Amount:      stripe.Int64(item.Amount.Mul(decimal.NewFromInt(100)).IntPart()),
		Currency:    stripe.String("usd"),
	}

	if _, err := p.api.V1InvoiceItems.Create(ctx, params); err != nil {
		p.logger.Errorw("failed to add stripe invoice item",
			"account_id", accountID,
			"invoice_id", invoiceID,
			"error", err)
		return ierr.WithError(err).
			WithHint("Unable to add the invoice item with the payment provider").
			Mark(ierr.ErrCollaboratorUnavailable)
	}

	return nil
}

// FinalizeInvoice finalizes a draft invoice
func (p *Provider) FinalizeInvoice(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	params := &stripe.InvoiceFinalizeInvoiceParams{
		AutoAdvance: stripe.Bool(false),
	}

	invoice, err := p.api.V1Invoices.FinalizeInvoice(ctx, invoiceID, params)
	if err != nil {
		p.logger.Errorw("failed to finalize stripe invoice",
			"invoice_id", invoiceID,
			"error", err)
		return nil, ierr.WithError(err).
			WithHint("Unable to finalize the invoice with the payment provider").
			Mark(ierr.ErrCollaboratorUnavailable)
	}

	return &billing.Invoice{
		ID:        invoice.ID,
		Status:    string(invoice.Status),
		Total:     decimal.New(invoice.Total, -2),
		Currency:  string(invoice.Currency),
		HostedURL: invoice.HostedInvoiceURL,
	}, nil
}

// SendInvoice emails the finalized invoice to the account
func (p *Provider) SendInvoice(ctx context.Context, invoiceID string) error {
	_, err := p.api.V1Invoices.SendInvoice(ctx, invoiceID, &stripe.InvoiceSendInvoiceParams{})
	if err != nil {
		p.logger.Errorw("failed to send stripe invoice",
			"invoice_id", invoiceID,
			"error", err)
		return ierr.WithError(err).
			WithHint("Unable to send the invoice with the payment provider").
			Mark(ierr.ErrCollaboratorUnavailable)
	}
	return nil
}

func chargeToRecord(charge *stripe.Charge) *billing.Record {
	record := &billing.Record{
		ID:          charge.ID,
		Amount:      decimal.New(charge.Amount, -2),
		Currency:    string(charge.Currency),
		Status:      string(charge.Status),
		Description: charge.Description,
		CreatedAt:   time.Unix(charge.Created, 0).UTC(),
		ReceiptURL:  charge.ReceiptURL,
		Source:      types.BillingRecordSourcePayment,
	}
	if charge.Paid {
		paidAt := record.CreatedAt
		record.PaidAt = &paidAt
	}
	return record
}

func invoiceToRecord(invoice *stripe.Invoice) *billing.Record {
	record := &billing.Record{
		ID:          invoice.ID,
		Amount:      decimal.New(invoice.Total, -2),
		Currency:    string(invoice.Currency),
		Status:      string(invoice.Status),
		Description: invoice.Description,
		CreatedAt:   time.Unix(invoice.Created, 0).UTC(),
		ReceiptURL:  invoice.HostedInvoiceURL,
		Source:      types.BillingRecordSourceInvoice,
	}
	if invoice.StatusTransitions != nil && invoice.StatusTransitions.PaidAt > 0 {
		paidAt := time.Unix(invoice.StatusTransitions.PaidAt, 0).UTC()
		record.PaidAt = &paidAt
	}
	return record
}
