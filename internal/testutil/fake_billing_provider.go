package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/billing"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
)

// ProviderCall records one invocation against the fake billing provider
type ProviderCall struct {
	Method         string
	AccountID      string
	SubscriptionID string
	PlanID         string
	InvoiceID      string
}

// FakeBillingProvider implements billing.Provider with recorded calls,
// configurable failures, and stubbed payment and invoice ledgers.
type FakeBillingProvider struct {
	mu sync.Mutex

	calls []ProviderCall
	seq   int

	// Payments is returned from GetPaymentHistory
	Payments []*billing.Record
	// Invoices is returned from ListInvoices
	Invoices []*billing.Record

	// Errors forces the named method to fail
	Errors map[string]error
}

func NewFakeBillingProvider() *FakeBillingProvider {
	return &FakeBillingProvider{
		Errors: make(map[string]error),
	}
}

func (f *FakeBillingProvider) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
	f.seq = 0
	f.Payments = nil
	f.Invoices = nil
	f.Errors = make(map[string]error)
}

// FailWith forces the named method to return err
func (f *FakeBillingProvider) FailWith(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errors[method] = err
}

// Calls returns recorded invocations in order
func (f *FakeBillingProvider) Calls() []ProviderCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ProviderCall(nil), f.calls...)
}

// CallsTo returns how many times the named method was invoked
func (f *FakeBillingProvider) CallsTo(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *FakeBillingProvider) record(call ProviderCall) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.Errors[call.Method]
}

func (f *FakeBillingProvider) CreateSubscription(ctx context.Context, accountID string, p *plan.Plan, paymentMethodID string) (string, error) {
	if err := f.record(ProviderCall{Method: "CreateSubscription", AccountID: accountID, PlanID: string(p.ID)}); err != nil {
		return "", err
	}
	f.mu.Lock()
	f.seq++
	id := fmt.Sprintf("sub_fake_%d", f.seq)
	f.mu.Unlock()
	return id, nil
}

func (f *FakeBillingProvider) UpdateSubscription(ctx context.Context, accountID string, subscriptionID string, p *plan.Plan) error {
	return f.record(ProviderCall{Method: "UpdateSubscription", AccountID: accountID, SubscriptionID: subscriptionID, PlanID: string(p.ID)})
}

func (f *FakeBillingProvider) CancelSubscription(ctx context.Context, accountID string, subscriptionID string) error {
	return f.record(ProviderCall{Method: "CancelSubscription", AccountID: accountID, SubscriptionID: subscriptionID})
}

func (f *FakeBillingProvider) GetPaymentHistory(ctx context.Context, accountID string, limit int) ([]*billing.Record, error) {
	if err := f.record(ProviderCall{Method: "GetPaymentHistory", AccountID: accountID}); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*billing.Record(nil), f.Payments...), nil
}

func (f *FakeBillingProvider) ListInvoices(ctx context.Context, subscriptionID string, limit int) ([]*billing.Record, error) {
	if err := f.record(ProviderCall{Method: "ListInvoices", SubscriptionID: subscriptionID}); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*billing.Record(nil), f.Invoices...), nil
}

func (f *FakeBillingProvider) CreateInvoice(ctx context.Context, accountID string, memo string, daysUntilDue int) (string, error) {
	if err := f.record(ProviderCall{Method: "CreateInvoice", AccountID: accountID}); err != nil {
		return "", err
	}
	f.mu.Lock()
	f.seq++
	id := fmt.Sprintf("in_fake_%d", f.seq)
	f.mu.Unlock()
	return id, nil
}

func (f *FakeBillingProvider) AddInvoiceItem(ctx context.Context, accountID string, invoiceID string, item billing.InvoiceItem) error {
	return f.record(ProviderCall{Method: "AddInvoiceItem", AccountID: accountID, InvoiceID: invoiceID})
}

func (f *FakeBillingProvider) FinalizeInvoice(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	if err := f.record(ProviderCall{Method: "FinalizeInvoice", InvoiceID: invoiceID}); err != nil {
		return nil, err
	}
	return &billing.Invoice{ID: invoiceID, Status: "open"}, nil
}

func (f *FakeBillingProvider) SendInvoice(ctx context.Context, invoiceID string) error {
	return f.record(ProviderCall{Method: "SendInvoice", InvoiceID: invoiceID})
}
