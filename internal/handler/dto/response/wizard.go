package response

import (
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/handler/dto/request"
)

type WizardBanner struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type WizardRoom struct {
	ID     int32  `json:"id"`
	Number int32  `json:"number"`
	Type   string `json:"type"`
}

// WizardView is the full reactive surface of one wizard instance: inputs as
// entered, derived summary fields, and the current banner, ready for the UI
// to render without further computation.
type WizardView struct {
	ID            string        `json:"id"`
	State         string        `json:"state"`
	CheckIn       *string       `json:"checkIn,omitempty"`
	CheckOut      *string       `json:"checkOut,omitempty"`
	RoomCriterion string        `json:"room,omitempty"`
	FirstName     string        `json:"firstName,omitempty"`
	LastName      string        `json:"lastName,omitempty"`
	Email         string        `json:"email,omitempty"`
	CardDisplay   string        `json:"cardDisplay,omitempty"`
	Nights        int           `json:"nights"`
	TotalCents    *int64        `json:"totalCents,omitempty"`
	SelectedRoom  *WizardRoom   `json:"selectedRoom,omitempty"`
	Banner        *WizardBanner `json:"banner,omitempty"`
	// ConfirmationCode is display-only and not verifiable against the
	// server record.
	ConfirmationCode string `json:"confirmationCode,omitempty"`
}

func FromWizard(w *booking.Wizard) *WizardView {
	view := &WizardView{
		ID:               w.ID().String(),
		State:            string(w.State()),
		RoomCriterion:    w.RoomCriterion(),
		FirstName:        w.FirstName(),
		LastName:         w.LastName(),
		Email:            w.Email(),
		CardDisplay:      w.CardDisplay(),
		Nights:           w.Nights(),
		ConfirmationCode: w.ConfirmationCode(),
	}

	view.CheckIn = formatDate(w.CheckIn())
	view.CheckOut = formatDate(w.CheckOut())

	if q := w.Quote(); q != nil {
		cents := q.Total.Cents()
		view.TotalCents = &cents
	}
	if r := w.SelectedRoom(); r != nil {
		view.SelectedRoom = &WizardRoom{
			ID:     r.ID(),
			Number: r.Number(),
			Type:   r.Type().String(),
		}
	}
	if b := w.Banner(); b != nil {
		view.Banner = &WizardBanner{
			Kind:    string(b.Kind),
			Message: b.Message,
		}
	}
	return view
}

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(request.DateLayout)
	return &s
}
