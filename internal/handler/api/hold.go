package api

import (
	"net/http"

	"hotelres/internal/domain/hold"
	reqdto "hotelres/internal/handler/dto/request"
	resdto "hotelres/internal/handler/dto/response"
	"hotelres/internal/handler/middleware"
	"hotelres/internal/pkg/errs"
	"hotelres/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type HoldHandler struct {
	holdCommands commands.HoldCommands
}

func NewHoldHandler(holdCommands commands.HoldCommands) *HoldHandler {
	return &HoldHandler{
		holdCommands: holdCommands,
	}
}

// @Summary Create inventory hold
// @Description Hold room inventory for a stay range pending payment
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /reservations/hold [post]
func (h *HoldHandler) CreateHold(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateHoldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, err := req.ParseCheckIn()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_in date, expected YYYY-MM-DD",
		})
		return
	}
	checkOut, err := req.ParseCheckOut()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_out date, expected YYYY-MM-DD",
		})
		return
	}

	params := commands.CreateHoldParams{
		UserID:     userID,
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		RatePlanID: req.RatePlanID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Quantity:   req.Quantity,
		CouponCode: req.GetCouponCode(),
	}

	result, err := h.holdCommands.CreateHold(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errs.Is(err, commands.ErrSoldOut):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No rooms available for the requested dates",
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

	c.JSON(http.StatusCreated, resdto.FromHoldResult(result))
}

// @Summary Cancel inventory hold
// @Description Release a hold and return its capacity; idempotent
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param holdCode path string true "Hold code"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /reservations/hold/{holdCode} [delete]
func (h *HoldHandler) CancelHold(c *gin.Context) {
	holdCode := c.Param("holdCode")
	if !hold.IsCode(holdCode) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hold code format",
		})
		return
	}

	if err := h.holdCommands.CancelHold(c.Request.Context(), holdCode); err != nil {
		switch {
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

	c.Status(http.StatusNoContent)
}

// @Summary Release expired holds
// @Description Run one expired-hold sweep immediately
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/holds/release-expired [post]
func (h *HoldHandler) ReleaseExpired(c *gin.Context) {
	released, err := h.holdCommands.ReleaseExpired(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.SweepResponse{Released: released})
}
