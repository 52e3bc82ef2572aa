package v1

import (
	"net/http"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/service"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	service service.UsageService
	log     *logger.Logger
}

func NewUsageHandler(service service.UsageService, log *logger.Logger) *UsageHandler {
	return &UsageHandler{
		service: service,
		log:     log,
	}
}

// @Summary Get usage snapshot
// @Description Get current-period consumption for the caller's account
// @Tags Usage
// @Produce json
// @Success 200 {object} dto.UsageSnapshotResponse
// @Failure 503 {object} ierr.ErrorResponse
// @Router /usage [get]
func (h *UsageHandler) GetUsageSnapshot(c *gin.Context) {
	id, err := accountID(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetUsageSnapshot(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// @Summary Check a usage limit
// @Description Decide whether the caller may perform an action under the current plan
// @Tags Usage
// @Produce json
// @Param action path string true "Action to evaluate"
// @Success 200 {object} dto.UsageLimitResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 503 {object} ierr.ErrorResponse
// @Router /usage/limits/{action} [get]
func (h *UsageHandler) CheckUsageLimit(c *gin.Context) {
	id, err := accountID(c)
	if err != nil {
		c.Error(err)
		return
	}

	action := types.LimitAction(c.Param("action"))
	if err := action.Validate(); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.CheckUsageLimit(c.Request.Context(), id, action)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}
