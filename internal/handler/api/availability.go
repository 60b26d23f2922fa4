package api

import (
	"errors"
	"net/http"
	"time"

	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Search available rooms
// @Description List rooms free for the whole range, priced for the stay
// @Tags availability
// @Produce json
// @Param from query string true "Check-in date (YYYY-MM-DD)"
// @Param to query string true "Check-out date (YYYY-MM-DD)"
// @Param type query string false "Room type filter, omit or 'all' for every type"
// @Success 200 {array} resdto.AvailabilityRowResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing 'from' date",
		})
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing 'to' date",
		})
		return
	}

	rows, err := h.availability.Search(c.Request.Context(), from, to, c.Query("type"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Check-out must be after check-in",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityRows(rows))
}
