package api

import (
	"net/http"
	"strconv"

	resdto "hotelres/internal/handler/dto/response"
	"hotelres/internal/pkg/errs"
	"hotelres/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelQueries queries.HotelQueries
}

func NewHotelHandler(hotelQueries queries.HotelQueries) *HotelHandler {
	return &HotelHandler{
		hotelQueries: hotelQueries,
	}
}

// @Summary Featured hotel
// @Description Get a hotel with today's price and remaining capacity per room type
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} resdto.FeaturedHotelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /hotels/{id}/featured [get]
func (h *HotelHandler) GetFeatured(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	view, err := h.hotelQueries.GetFeatured(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errs.Is(err, queries.ErrHotelUnavailable):
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

	c.JSON(http.StatusOK, resdto.FromFeaturedHotelView(view))
}
