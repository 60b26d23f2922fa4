package api

import (
	"errors"
	"net/http"

	"booking-core/internal/domain/booking"
	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WizardHandler exposes the reservation wizard over HTTP. Every endpoint
// except creation resolves the instance, locks it for the duration of the
// request and replies with the full wizard view; validation problems are
// part of the view (the banner), not HTTP errors. The workflow absorbs
// them and the form redisplays.
type WizardHandler struct {
	wizards usecase.WizardService
}

func NewWizardHandler(wizards usecase.WizardService) *WizardHandler {
	return &WizardHandler{wizards: wizards}
}

// @Summary Start reservation wizard
// @Description Create a fresh reservation attempt with a catalog snapshot
// @Tags wizard
// @Produce json
// @Success 201 {object} resdto.WizardView
// @Failure 500 {object} map[string]string
// @Router /wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	w, err := h.wizards.StartWizard(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWizard(w))
}

// @Summary Get wizard state
// @Tags wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardView
// @Failure 404 {object} map[string]string
// @Router /wizard/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	h.withWizard(c, func(*booking.Wizard) error { return nil })
}

// @Summary Update stay selection
// @Description Set check-in/check-out/room; nights and price recompute live
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param request body reqdto.StayInput true "Stay fields (partial)"
// @Success 200 {object} resdto.WizardView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wizard/{id}/stay [put]
func (h *WizardHandler) SetStay(c *gin.Context) {
	var input reqdto.StayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	checkIn, hasCheckIn, err := input.ParseCheckIn()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in date format"})
		return
	}
	checkOut, hasCheckOut, err := input.ParseCheckOut()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-out date format"})
		return
	}

	h.withWizard(c, func(w *booking.Wizard) error {
		if hasCheckIn {
			if err := w.SetCheckIn(checkIn); err != nil {
				return err
			}
		}
		if hasCheckOut {
			if err := w.SetCheckOut(checkOut); err != nil {
				return err
			}
		}
		if input.Room != nil {
			if err := w.SetRoomCriterion(*input.Room); err != nil {
				return err
			}
		}
		return nil
	})
}

// @Summary Submit step 1
// @Description Advance from date/room selection to guest details
// @Tags wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/{id}/step1 [post]
func (h *WizardHandler) SubmitStep1(c *gin.Context) {
	h.withWizard(c, func(w *booking.Wizard) error {
		err := w.SubmitStep1()
		if isAbsorbed(err) {
			return nil
		}
		return err
	})
}

// @Summary Update guest details
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param request body reqdto.GuestInput true "Guest fields (partial)"
// @Success 200 {object} resdto.WizardView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wizard/{id}/guest [put]
func (h *WizardHandler) SetGuest(c *gin.Context) {
	var input reqdto.GuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.withWizard(c, func(w *booking.Wizard) error {
		firstName, lastName, email := w.FirstName(), w.LastName(), w.Email()
		if input.FirstName != nil {
			firstName = *input.FirstName
		}
		if input.LastName != nil {
			lastName = *input.LastName
		}
		if input.Email != nil {
			email = *input.Email
		}
		if err := w.SetGuestInfo(firstName, lastName, email); err != nil {
			return err
		}
		if input.CardNumber != nil {
			if err := w.SetCardNumber(*input.CardNumber); err != nil {
				return err
			}
		}
		return nil
	})
}

// @Summary Submit step 2
// @Description Validate guest details and submit the booking
// @Tags wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} resdto.WizardView
// @Router /wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	h.withWizard(c, func(w *booking.Wizard) error {
		err := w.SubmitStep2(c.Request.Context())
		if isAbsorbed(err) {
			return nil
		}
		return err
	})
}

// @Summary Go back to date selection
// @Tags wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardView
// @Failure 404 {object} map[string]string
// @Router /wizard/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.withWizard(c, func(w *booking.Wizard) error {
		return w.GoBack()
	})
}

// withWizard resolves and locks the instance, runs op, and renders the
// resulting wizard view. Errors the wizard absorbed into its banner arrive
// here as nil and still produce a 200 with the banner in the body.
func (h *WizardHandler) withWizard(c *gin.Context, op func(*booking.Wizard) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wizard ID format"})
		return
	}

	w, release, err := h.wizards.Acquire(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard not found"})
		return
	}
	defer release()

	if err := op(w); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Action not allowed in current state"})
		case errors.Is(err, booking.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "A submission is already being processed"})
		case errors.Is(err, errs.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, resdto.FromWizard(w))
		default:
			c.JSON(http.StatusBadGateway, resdto.FromWizard(w))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWizard(w))
}

// isAbsorbed reports whether the wizard already converted the failure into
// banner state, making a 200 + banner the right reply for a form-driven UI.
func isAbsorbed(err error) bool {
	return errors.Is(err, booking.ErrMissingFields) ||
		errors.Is(err, booking.ErrInvalidDateOrder) ||
		errors.Is(err, booking.ErrInvalidEmail) ||
		errors.Is(err, booking.ErrInvalidCard)
}
