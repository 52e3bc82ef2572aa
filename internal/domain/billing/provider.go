package billing

import (
	"context"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
)

// Provider is the billing collaborator contract wrapping the external
// payment processor. All monetary side effects go through it; local
// subscription state is only mutated after a provider call succeeds.
type Provider interface {
	// CreateSubscription creates an external subscription for the account
	// on the given paid plan and returns the provider's subscription id
	CreateSubscription(ctx context.Context, accountID string, p *plan.Plan, paymentMethodID string) (string, error)

	// UpdateSubscription moves an existing external subscription to a new
	// paid plan without creating a second subscription
	UpdateSubscription(ctx context.Context, accountID string, subscriptionID string, p *plan.Plan) error

	// CancelSubscription cancels the external subscription
	CancelSubscription(ctx context.Context, accountID string, subscriptionID string) error

	// GetPaymentHistory returns the provider's payment ledger for the
	// account, most recent first
	GetPaymentHistory(ctx context.Context, accountID string, limit int) ([]*Record, error)

	// ListInvoices returns provider-reported invoices for the external
	// subscription, most recent first
	ListInvoices(ctx context.Context, subscriptionID string, limit int) ([]*Record, error)

	// CreateInvoice opens a draft invoice for the account and returns the
	// provider's invoice id
	CreateInvoice(ctx context.Context, accountID string, memo string, daysUntilDue int) (string, error)

	// AddInvoiceItem appends a line item to a draft invoice
	AddInvoiceItem(ctx context.Context, accountID string, invoiceID string, item InvoiceItem) error

	// FinalizeInvoice finalizes a draft invoice
	FinalizeInvoice(ctx context.Context, invoiceID string) (*Invoice, error)

	// SendInvoice emails the finalized invoice to the account
	SendInvoice(ctx context.Context, invoiceID string) error
}
