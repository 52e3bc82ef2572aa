package service

import (
	"testing"

	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/testutil"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/stretchr/testify/suite"
)

type PlanServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PlanService
}

func TestPlanService(t *testing.T) {
	suite.Run(t, new(PlanServiceSuite))
}

func (s *PlanServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPlanService(ServiceParams{
		Logger:  s.GetLogger(),
		Config:  s.GetConfig(),
		Catalog: s.GetCatalog(),
	})
}

func (s *PlanServiceSuite) TestGetPlan() {
	resp, err := s.service.GetPlan(s.GetContext(), types.PlanProfessional)
	s.NoError(err)
	s.Equal(types.PlanProfessional, resp.ID)
	s.Equal("Professional", resp.Name)
}

func (s *PlanServiceSuite) TestGetPlanUnknown() {
	_, err := s.service.GetPlan(s.GetContext(), types.PlanID("platinum"))
	s.Error(err)
	s.True(ierr.IsUnknownPlan(err))
}

func (s *PlanServiceSuite) TestGetPlanComparison() {
	resp, err := s.service.GetPlanComparison(s.GetContext())
	s.NoError(err)
	s.Len(resp.Items, 3)
	s.Equal(types.PlanBasic, resp.Items[0].ID)
	s.Equal(types.PlanEnterprise, resp.Items[2].ID)
}
