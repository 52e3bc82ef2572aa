package usage

import (
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
)

// Snapshot is a point-in-time view of an account's current-period
// consumption. It is recomputed on demand and never cached beyond a single
// limit decision.
type Snapshot struct {
	AccountID          string    `json:"account_id"`
	BusinessProfiles   int64     `json:"business_profiles"`
	MonthlyInvestments int64     `json:"monthly_investments"`
	StorageGB          float64   `json:"storage_gb"`
	APICalls           int64     `json:"api_calls"`
	SupportTickets     int64     `json:"support_tickets"`
	Taken              time.Time `json:"taken"`
}

// Decision is the outcome of evaluating an action against a plan's limits
type Decision struct {
	Allowed   bool    `json:"allowed"`
	Unlimited bool    `json:"unlimited"`
	Limit     float64 `json:"limit"`
	Current   float64 `json:"current"`
}

// Evaluate decides whether the action is permitted for the plan given the
// usage snapshot. A limit of -1 means unlimited and short-circuits without
// inspecting usage; otherwise the action is allowed strictly below the
// limit, so reaching the limit blocks the next unit.
func Evaluate(p *plan.Plan, snap *Snapshot, action types.LimitAction) Decision {
	switch action {
	case types.LimitActionCreateBusinessProfile:
		return decideCount(p.Limits.BusinessProfiles, snap.BusinessProfiles)
	case types.LimitActionMakeInvestment:
		return decideCount(p.Limits.MonthlyInvestments, snap.MonthlyInvestments)
	case types.LimitActionUploadFile:
		return decideFloat(p.Limits.StorageGB, snap.StorageGB)
	case types.LimitActionAPICall, types.LimitActionOpenSupportTicket:
		// not metered on any tier
		return Decision{Allowed: true, Unlimited: true}
	default:
		// unreachable for validated actions
		return Decision{Allowed: true, Unlimited: true}
	}
}

func decideCount(limit int64, current int64) Decision {
	if limit == types.UnlimitedLimit {
		return Decision{Allowed: true, Unlimited: true, Current: float64(current)}
	}
	return Decision{
		Allowed: current < limit,
		Limit:   float64(limit),
		Current: float64(current),
	}
}

func decideFloat(limit float64, current float64) Decision {
	if limit == float64(types.UnlimitedLimit) {
		return Decision{Allowed: true, Unlimited: true, Current: current}
	}
	return Decision{
		Allowed: current < limit,
		Limit:   limit,
		Current: current,
	}
}
