package billing

import (
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/shopspring/decimal"
)

// Record is one entry in an account's billing ledger: either a payment from
// the provider's charge ledger or a provider-reported invoice. Records are
// read-only once created; the aggregator only merges and sorts.
type Record struct {
	ID          string                    `json:"id"`
	Amount      decimal.Decimal           `json:"amount"`
	Currency    string                    `json:"currency"`
	Status      string                    `json:"status"`
	Description string                    `json:"description,omitempty"`
	PaidAt      *time.Time                `json:"paid_at,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	ReceiptURL  string                    `json:"receipt_url,omitempty"`
	Source      types.BillingRecordSource `json:"source"`
}

// SortKey is the chronological key used by the history aggregator: paidAt
// when present, createdAt otherwise
func (r *Record) SortKey() time.Time {
	if r.PaidAt != nil {
		return *r.PaidAt
	}
	return r.CreatedAt
}

// InvoiceItem is one line of an ad-hoc invoice
type InvoiceItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is the provider's view of an ad-hoc invoice after finalization
type Invoice struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
	HostedURL string          `json:"hosted_url,omitempty"`
}
