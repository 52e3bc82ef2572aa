package dto

import (
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/usage"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
)

type UsageSnapshotResponse struct {
	*usage.Snapshot
}

// UsageLimitResponse is the outcome of a limit check for one action
type UsageLimitResponse struct {
	Action    types.LimitAction `json:"action"`
	Allowed   bool              `json:"allowed"`
	Unlimited bool              `json:"unlimited"`
	Limit     float64           `json:"limit"`
	Current   float64           `json:"current"`
	Plan      types.PlanID      `json:"plan"`
}
