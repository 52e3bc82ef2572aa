package dto

import (
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/billing"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/validator"
	"github.com/shopspring/decimal"
)

// BillingHistoryResponse is the merged chronological ledger for an account,
// most recent first
type BillingHistoryResponse struct {
	Items []*billing.Record `json:"items"`
	Count int               `json:"count"`
}

// GenerateInvoiceRequest creates an ad-hoc invoice for an account
type GenerateInvoiceRequest struct {
	Items        []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Memo         string               `json:"memo,omitempty"`
	DaysUntilDue int                  `json:"days_until_due,omitempty" validate:"omitempty,gt=0"`
}

type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

func (r *GenerateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for _, item := range r.Items {
		if !item.Amount.IsPositive() {
			return ierr.NewError("invoice item amount must be positive").
				WithHint("Each invoice item needs a positive amount").
				WithReportableDetails(map[string]any{
					"description": item.Description,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// ToItems converts the request lines to domain invoice items
func (r *GenerateInvoiceRequest) ToItems() []billing.InvoiceItem {
	items := make([]billing.InvoiceItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = billing.InvoiceItem{
			Description: item.Description,
			Amount:      item.Amount,
		}
	}
	return items
}

type InvoiceResponse struct {
	*billing.Invoice
}
