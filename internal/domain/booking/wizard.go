package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"booking-core/internal/domain/room"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// State is the wizard position. Transitions:
//
//	SelectingDates -> EnteringGuestInfo  (SubmitStep1)
//	EnteringGuestInfo -> SelectingDates  (GoBack, inputs preserved)
//	EnteringGuestInfo -> Confirmed       (SubmitStep2, terminal)
//
// There is no way out of Confirmed; a fresh booking is a fresh Wizard.
type State string

const (
	StateSelectingDates    State = "selecting_dates"
	StateEnteringGuestInfo State = "entering_guest_info"
	StateConfirmed         State = "confirmed"
)

var (
	ErrInvalidTransition  = errors.New("transition not allowed in current state")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// Submitter is the booking-persistence port. A conflicting reservation must
// come back marked with errs.ErrRoomUnavailable; anything else is treated
// as transient.
type Submitter interface {
	Submit(ctx context.Context, req ReservationRequest) error
}

type BannerKind string

const (
	BannerValidation BannerKind = "validation"
	BannerConflict   BannerKind = "conflict"
	BannerTransient  BannerKind = "transient"
)

// Banner is the user-facing message the UI renders above the form.
type Banner struct {
	Kind    BannerKind
	Message string
}

const (
	msgMissingFields = "Please complete all fields"
	msgDateOrder     = "The check-out date must be after the check-in date"
	msgInvalidEmail  = "Please enter a valid email address"
	msgInvalidCard   = "Please enter a valid card number"
	msgConflict      = "A reservation already exists for those dates. Please choose different dates."
	msgTransient     = "An error occurred while processing your reservation. Please try again."
)

// Wizard is one reservation attempt. It owns all form state, recomputes the
// quote live while dates/room change, and drives the submission. A Wizard is
// not safe for concurrent use; callers serialize access per instance.
type Wizard struct {
	id        uuid.UUID
	catalog   []*room.Room
	calc      PriceCalculator
	clock     clock.Clock
	submitter Submitter

	state         State
	checkIn       time.Time
	checkOut      time.Time
	roomCriterion string

	firstName  string
	lastName   string
	email      string
	cardDigits string

	nights           int
	selectedRoom     *room.Room
	quote            *Quote
	banner           *Banner
	confirmationCode string
	submitting       bool
}

// NewWizard starts a reservation attempt against an immutable catalog
// snapshot. Staleness of the snapshot is acceptable; it lasts one attempt.
func NewWizard(catalog []*room.Room, calc PriceCalculator, clk clock.Clock, submitter Submitter) *Wizard {
	return &Wizard{
		id:        uuid.New(),
		catalog:   catalog,
		calc:      calc,
		clock:     clk,
		submitter: submitter,
		state:     StateSelectingDates,
	}
}

func (w *Wizard) SetCheckIn(t time.Time) error {
	if w.state != StateSelectingDates {
		return ErrInvalidTransition
	}
	w.checkIn = toDate(t)
	w.recompute()
	return nil
}

func (w *Wizard) SetCheckOut(t time.Time) error {
	if w.state != StateSelectingDates {
		return ErrInvalidTransition
	}
	w.checkOut = toDate(t)
	w.recompute()
	return nil
}

func (w *Wizard) SetRoomCriterion(criterion string) error {
	if w.state != StateSelectingDates {
		return ErrInvalidTransition
	}
	w.roomCriterion = criterion
	w.recompute()
	return nil
}

func (w *Wizard) SetGuestInfo(firstName, lastName, email string) error {
	if w.state != StateEnteringGuestInfo {
		return ErrInvalidTransition
	}
	w.firstName = firstName
	w.lastName = lastName
	w.email = email
	return nil
}

// SetCardNumber keeps every digit entered; non-digits are stripped on the
// way in, formatting is applied on the way out (CardDisplay).
func (w *Wizard) SetCardNumber(raw string) error {
	if w.state != StateEnteringGuestInfo {
		return ErrInvalidTransition
	}
	w.cardDigits = stripNonDigits(raw)
	return nil
}

// recompute re-derives nights and the quote from the current inputs. It is
// idempotent and touches nothing but derived state: a room that does not
// resolve simply suppresses the summary.
func (w *Wizard) recompute() {
	w.nights = 0
	w.selectedRoom = nil
	w.quote = nil

	if w.checkIn.IsZero() || w.checkOut.IsZero() {
		return
	}
	w.nights = Nights(w.checkIn, w.checkOut)
	if w.nights < 1 {
		return
	}

	r, ok := FindRoom(w.catalog, w.roomCriterion)
	if !ok {
		return
	}
	w.selectedRoom = r
	q := w.calc.Quote(r, w.nights, w.clock.Now())
	w.quote = &q
}

// SubmitStep1 moves from date/room selection to guest details.
func (w *Wizard) SubmitStep1() error {
	if w.state != StateSelectingDates {
		return ErrInvalidTransition
	}

	if w.checkIn.IsZero() || w.checkOut.IsZero() || w.roomCriterion == "" {
		w.banner = &Banner{Kind: BannerValidation, Message: msgMissingFields}
		return ErrMissingFields
	}
	if !w.checkOut.After(w.checkIn) {
		w.banner = &Banner{Kind: BannerValidation, Message: msgDateOrder}
		return ErrInvalidDateOrder
	}

	w.banner = nil
	w.state = StateEnteringGuestInfo
	return nil
}

// GoBack returns to date selection, preserving everything entered so far.
func (w *Wizard) GoBack() error {
	if w.state != StateEnteringGuestInfo {
		return ErrInvalidTransition
	}
	w.banner = nil
	w.state = StateSelectingDates
	return nil
}

// SubmitStep2 validates the guest details and submits the booking. Guards
// run strictly before the submitter is invoked, so an invalid form never
// reaches the network. On a conflict the wizard stays put with a
// conflict-specific banner; on any other failure it stays put with a
// generic retry banner. No automatic retry, no cancellation once sent.
func (w *Wizard) SubmitStep2(ctx context.Context) error {
	if w.state != StateEnteringGuestInfo {
		return ErrInvalidTransition
	}
	if w.submitting {
		return ErrSubmissionInFlight
	}

	if w.firstName == "" || w.lastName == "" || w.email == "" || w.cardDigits == "" {
		w.banner = &Banner{Kind: BannerValidation, Message: msgMissingFields}
		return ErrMissingFields
	}
	if _, err := NewEmail(w.email); err != nil {
		w.banner = &Banner{Kind: BannerValidation, Message: msgInvalidEmail}
		return ErrInvalidEmail
	}
	if _, err := NewCardNumber(w.cardDigits); err != nil {
		w.banner = &Banner{Kind: BannerValidation, Message: msgInvalidCard}
		return ErrInvalidCard
	}
	if w.selectedRoom == nil {
		// Criterion never resolved against the snapshot (e.g. a type with
		// no rooms); same remediation as an incomplete form.
		w.banner = &Banner{Kind: BannerValidation, Message: msgMissingFields}
		return ErrMissingFields
	}

	stay, err := NewStayRange(w.checkIn, w.checkOut)
	if err != nil {
		w.banner = &Banner{Kind: BannerValidation, Message: msgDateOrder}
		return err
	}

	req := ReservationRequest{
		FirstName:  w.firstName,
		LastName:   w.lastName,
		Email:      w.email,
		CardNumber: w.cardDigits,
		RoomID:     w.selectedRoom.ID(),
		Stay:       stay,
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	if err := w.submitter.Submit(ctx, req); err != nil {
		if errors.Is(err, errs.ErrRoomUnavailable) {
			w.banner = &Banner{Kind: BannerConflict, Message: msgConflict}
		} else {
			w.banner = &Banner{Kind: BannerTransient, Message: msgTransient}
		}
		return err
	}

	w.banner = nil
	w.confirmationCode = newConfirmationCode()
	w.state = StateConfirmed
	return nil
}

func (w *Wizard) ID() uuid.UUID         { return w.id }
func (w *Wizard) State() State          { return w.state }
func (w *Wizard) CheckIn() time.Time    { return w.checkIn }
func (w *Wizard) CheckOut() time.Time   { return w.checkOut }
func (w *Wizard) RoomCriterion() string { return w.roomCriterion }
func (w *Wizard) FirstName() string     { return w.firstName }
func (w *Wizard) LastName() string      { return w.lastName }
func (w *Wizard) Email() string         { return w.email }
func (w *Wizard) Nights() int           { return w.nights }

// SelectedRoom is nil until the criterion resolves against the snapshot.
func (w *Wizard) SelectedRoom() *room.Room { return w.selectedRoom }

// Quote is nil whenever nights < 1 or no room is resolved.
func (w *Wizard) Quote() *Quote { return w.quote }

func (w *Wizard) Banner() *Banner { return w.banner }

// CardDisplay renders the first 16 stored digits in groups of 4; the stored
// token itself is untouched.
func (w *Wizard) CardDisplay() string { return FormatCardDigits(w.cardDigits) }

// ConfirmationCode is set once on entry to Confirmed. It is display-only:
// random, not guaranteed unique, never persisted and never validated by the
// server. The reservation's real identifier is the server-assigned ID.
func (w *Wizard) ConfirmationCode() string { return w.confirmationCode }

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newConfirmationCode() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return fmt.Sprintf("%s%06d", b, rand.Intn(1000000))
}
