package dto

import (
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
)

type PlanResponse struct {
	*plan.Plan
}

type ListPlansResponse struct {
	Items []*PlanResponse `json:"items"`
}
