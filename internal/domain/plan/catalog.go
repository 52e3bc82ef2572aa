package plan

import (
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/shopspring/decimal"
)

// Catalog is a read-only table of subscription tiers, constructed once at
// process start and injected wherever plan data is needed. It is never
// mutated after construction.
type Catalog struct {
	plans map[types.PlanID]*Plan
	order []types.PlanID
}

// NewCatalog builds a catalog from the given plans, preserving their order
// for display purposes
func NewCatalog(plans ...*Plan) *Catalog {
	c := &Catalog{
		plans: make(map[types.PlanID]*Plan, len(plans)),
		order: make([]types.PlanID, 0, len(plans)),
	}
	for _, p := range plans {
		if _, exists := c.plans[p.ID]; exists {
			continue
		}
		c.plans[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

// Lookup returns the plan for the given id
func (c *Catalog) Lookup(id types.PlanID) (*Plan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	p, ok := c.plans[id]
	if !ok {
		return nil, ierr.NewError("plan not in catalog").
			WithHint("The requested plan does not exist").
			WithReportableDetails(map[string]any{
				"plan": id,
			}).
			Mark(ierr.ErrUnknownPlan)
	}
	return p, nil
}

// All returns the full catalog in display order
func (c *Catalog) All() []*Plan {
	result := make([]*Plan, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.plans[id])
	}
	return result
}

// DefaultCatalog returns the standard three-tier catalog. The pricing
// numbers are configuration data; override them by constructing a catalog
// with NewCatalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		&Plan{
			ID:       types.PlanBasic,
			Name:     "Basic",
			Price:    decimal.Zero,
			Currency: "usd",
			Interval: types.BillingIntervalMonthly,
			Features: []string{
				"1 business profile",
				"5 investments per month",
				"1 GB document storage",
				"Community support",
			},
			Limits: Limits{
				BusinessProfiles:   1,
				MonthlyInvestments: 5,
				StorageGB:          1,
				SupportLevel:       types.SupportLevelCommunity,
			},
		},
		&Plan{
			ID:       types.PlanProfessional,
			Name:     "Professional",
			Price:    decimal.NewFromFloat(29.99),
			Currency: "usd",
			Interval: types.BillingIntervalMonthly,
			Features: []string{
				"5 business profiles",
				"50 investments per month",
				"25 GB document storage",
				"Priority support",
				"Advanced analytics",
			},
			Limits: Limits{
				BusinessProfiles:   5,
				MonthlyInvestments: 50,
				StorageGB:          25,
				SupportLevel:       types.SupportLevelPriority,
			},
		},
		&Plan{
			ID:       types.PlanEnterprise,
			Name:     "Enterprise",
			Price:    decimal.NewFromFloat(99.99),
			Currency: "usd",
			Interval: types.BillingIntervalMonthly,
			Features: []string{
				"Unlimited business profiles",
				"Unlimited investments",
				"250 GB document storage",
				"Dedicated support",
				"Advanced analytics",
				"Custom invoicing",
			},
			Limits: Limits{
				BusinessProfiles:   types.UnlimitedLimit,
				MonthlyInvestments: types.UnlimitedLimit,
				StorageGB:          250,
				SupportLevel:       types.SupportLevelDedicated,
			},
		},
	)
}
