package service

import (
	"context"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
)

// PlanService exposes the plan catalog
type PlanService interface {
	GetPlan(ctx context.Context, id types.PlanID) (*dto.PlanResponse, error)
	GetPlanComparison(ctx context.Context) (*dto.ListPlansResponse, error)
}

type planService struct {
	ServiceParams
}

func NewPlanService(params ServiceParams) PlanService {
	return &planService{
		ServiceParams: params,
	}
}

func (s *planService) GetPlan(ctx context.Context, id types.PlanID) (*dto.PlanResponse, error) {
	p, err := s.Catalog.Lookup(id)
	if err != nil {
		return nil, err
	}
	return &dto.PlanResponse{Plan: p}, nil
}

// GetPlanComparison returns the full catalog in display order
func (s *planService) GetPlanComparison(ctx context.Context) (*dto.ListPlansResponse, error) {
	plans := s.Catalog.All()
	response := &dto.ListPlansResponse{
		Items: make([]*dto.PlanResponse, len(plans)),
	}
	for i, p := range plans {
		response.Items[i] = &dto.PlanResponse{Plan: p}
	}
	return response, nil
}
