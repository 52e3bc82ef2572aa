package v1

import (
	"net/http"
	"strconv"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/api/dto"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/service"
	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service service.BillingService
	log     *logger.Logger
}

func NewBillingHandler(service service.BillingService, log *logger.Logger) *BillingHandler {
	return &BillingHandler{
		service: service,
		log:     log,
	}
}

// @Summary Get billing history
// @Description Get the caller's merged payment and invoice history, newest first
// @Tags Billing
// @Produce json
// @Param limit query int false "Maximum number of records"
// @Success 200 {object} dto.BillingHistoryResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /billing/history [get]
func (h *BillingHandler) GetBillingHistory(c *gin.Context) {
	id, err := accountID(c)
	if err != nil {
		c.Error(err)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.Error(ierr.NewError("invalid limit").
				WithHint("limit must be a non-negative integer").
				Mark(ierr.ErrValidation))
			return
		}
	}

	resp, err := h.service.GetBillingHistory(c.Request.Context(), id, limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// @Summary Generate a custom invoice
// @Description Create, finalize and send an ad-hoc invoice for the caller
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.GenerateInvoiceRequest true "Invoice line items"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /billing/invoices [post]
func (h *BillingHandler) GenerateCustomInvoice(c *gin.Context) {
	id, err := accountID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GenerateCustomInvoice(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(resp))
}
