package v1

import (
	"net/http"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/service"
	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	service service.SubscriptionService
	log     *logger.Logger
}

func NewSubscriptionHandler(service service.SubscriptionService, log *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		log:     log,
	}
}

// @Summary Get current subscription
// @Description Get the caller's subscription with its resolved plan and activity state
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /subscription [get]
func (h *SubscriptionHandler) GetCurrentSubscription(c *gin.Context) {
	id, err := accountID(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetCurrentSubscription(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// @Summary Change subscription
// @Description Move the caller to a different plan, upgrading or downgrading as needed
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body dto.ChangeSubscriptionRequest true "Target plan"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 402 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /subscription [put]
func (h *SubscriptionHandler) ChangeSubscription(c *gin.Context) {
	id, err := accountID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.ChangeSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ChangeSubscription(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// @Summary Cancel subscription
// @Description Cancel the caller's subscription, retaining access until the period end
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body dto.CancelSubscriptionRequest false "Cancellation reason"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /subscription [delete]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	id, err := accountID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.CancelSubscriptionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Invalid request format").
				Mark(ierr.ErrValidation))
			return
		}
	}

	resp, err := h.service.CancelSubscription(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}
