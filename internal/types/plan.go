package types

import (
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/samber/lo"
)

// PlanID identifies a subscription tier in the catalog
type PlanID string

const (
	PlanBasic        PlanID = "basic"
	PlanProfessional PlanID = "professional"
	PlanEnterprise   PlanID = "enterprise"
)

func (p PlanID) String() string {
	return string(p)
}

func (p PlanID) Validate() error {
	allowed := []PlanID{
		PlanBasic,
		PlanProfessional,
		PlanEnterprise,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid plan").
			WithHint("The requested plan does not exist").
			WithReportableDetails(map[string]any{
				"plan":          p,
				"allowed_plans": allowed,
			}).
			Mark(ierr.ErrUnknownPlan)
	}
	return nil
}

// UnlimitedLimit is the sentinel value for a limit with no cap
const UnlimitedLimit int64 = -1

// BillingInterval is the cadence a plan is billed on
type BillingInterval string

const (
	BillingIntervalMonthly BillingInterval = "monthly"
	BillingIntervalYearly  BillingInterval = "yearly"
)

func (b BillingInterval) String() string {
	return string(b)
}

// SupportLevel is the support tier bundled with a plan
type SupportLevel string

const (
	SupportLevelCommunity SupportLevel = "community"
	SupportLevelPriority  SupportLevel = "priority"
	SupportLevelDedicated SupportLevel = "dedicated"
)

func (s SupportLevel) String() string {
	return string(s)
}
