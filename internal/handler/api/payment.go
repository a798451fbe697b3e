package api

import (
	"net/http"

	reqdto "hotelres/internal/handler/dto/request"
	resdto "hotelres/internal/handler/dto/response"
	"hotelres/internal/infra/payment"
	"hotelres/internal/pkg/errs"
	"hotelres/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Confirm payment
// @Description Confirm a payment against a live hold
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmPaymentRequest true "Payment confirmation"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payments/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentCommands.Confirm(c.Request.Context(), commands.ConfirmPaymentParams{
		HoldCode:   req.HoldCode,
		PaymentKey: req.PaymentKey,
		OrderID:    req.OrderID,
		Amount:     req.Amount,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrHoldNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hold not found",
			})
		case errs.Is(err, commands.ErrHoldExpired):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Hold already expired",
			})
		case errs.Is(err, commands.ErrAmountMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment amount does not match hold total",
			})
		case errs.Is(err, payment.ErrPaymentRejected):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment rejected by gateway",
			})
		case errs.Is(err, payment.ErrPaymentUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Payment gateway unavailable",
			})
		case errs.Is(err, commands.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}
