package booking

import (
	"errors"
	"strings"
)

var ErrMissingFields = errors.New("missing required fields")

// FieldError attaches a validation failure to the field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ReservationRequest is the full typed payload of a booking attempt: guest
// identity, payment token, selected room and stay. It is validated by one
// pure function usable from the wizard, the HTTP layer and tests alike.
type ReservationRequest struct {
	FirstName  string
	LastName   string
	Email      string
	CardNumber string
	RoomID     int32
	Stay       StayRange
}

// Validate returns every field-level problem it finds, in a stable order.
// An empty slice means the request may be submitted.
func (r ReservationRequest) Validate() []FieldError {
	var errs []FieldError

	for _, f := range []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"cardNumber", r.CardNumber},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, FieldError{Field: f.name, Err: ErrMissingFields})
		}
	}
	if r.RoomID == 0 {
		errs = append(errs, FieldError{Field: "roomId", Err: ErrMissingFields})
	}
	if r.Stay.IsZero() {
		errs = append(errs, FieldError{Field: "stay", Err: ErrMissingFields})
	}
	if len(errs) > 0 {
		return errs
	}

	if _, err := NewEmail(r.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Err: err})
	}
	if _, err := NewCardNumber(r.CardNumber); err != nil {
		errs = append(errs, FieldError{Field: "cardNumber", Err: err})
	}
	return errs
}
