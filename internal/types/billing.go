package types

// BillingRecordSource tags the provenance of a billing record
type BillingRecordSource string

const (
	// BillingRecordSourcePayment is a payment from the provider's charge ledger
	BillingRecordSourcePayment BillingRecordSource = "payment"
	// BillingRecordSourceInvoice is a provider-reported invoice
	BillingRecordSourceInvoice BillingRecordSource = "invoice"
)

func (s BillingRecordSource) String() string {
	return string(s)
}
