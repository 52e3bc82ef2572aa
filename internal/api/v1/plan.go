package v1

import (
	"net/http"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/service"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	service service.PlanService
	log     *logger.Logger
}

func NewPlanHandler(service service.PlanService, log *logger.Logger) *PlanHandler {
	return &PlanHandler{
		service: service,
		log:     log,
	}
}

// @Summary Get a plan
// @Description Get a plan definition by ID
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.PlanResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	resp, err := h.service.GetPlan(c.Request.Context(), types.PlanID(c.Param("id")))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// @Summary List plans
// @Description List all plans in display order for comparison
// @Tags Plans
// @Produce json
// @Success 200 {object} dto.ListPlansResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	resp, err := h.service.GetPlanComparison(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}
