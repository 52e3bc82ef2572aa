package plan

import (
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/shopspring/decimal"
)

// Plan is an immutable catalog entry describing a subscription tier
type Plan struct {
	// ID is the tier identifier (basic, professional, enterprise)
	ID types.PlanID `json:"id"`

	// Name is the display name of the tier
	Name string `json:"name"`

	// Price is the recurring charge for the tier; zero for the basic tier
	Price decimal.Decimal `json:"price"`

	// Currency is a three-letter ISO code in lowercase
	Currency string `json:"currency"`

	// Interval is the billing cadence for the tier
	Interval types.BillingInterval `json:"interval"`

	// Features is the ordered feature list shown on the pricing page
	Features []string `json:"features"`

	// Limits are the usage caps enforced for accounts on this tier
	Limits Limits `json:"limits"`
}

// Limits holds the usage caps of a plan. A value of -1 means unlimited.
type Limits struct {
	BusinessProfiles   int64              `json:"business_profiles"`
	MonthlyInvestments int64              `json:"monthly_investments"`
	StorageGB          float64            `json:"storage_gb"`
	SupportLevel       types.SupportLevel `json:"support_level"`
}

// IsPaid reports whether the plan carries a recurring charge
func (p *Plan) IsPaid() bool {
	return p.Price.IsPositive()
}
