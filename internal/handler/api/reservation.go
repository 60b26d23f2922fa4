package api

import (
	"errors"
	"net/http"

	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/infra/receipt"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservations queries.ReservationQueries
}

func NewReservationHandler(reservations queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// @Summary List reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.reservations.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	responses := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromReservationView(v)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Download reservation receipt
// @Tags reservations
// @Produce application/pdf
// @Param id path string true "Reservation ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/pdf [get]
func (h *ReservationHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	pdf, err := receipt.Render(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reservation-`+id.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
