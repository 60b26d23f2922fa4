package request

import "time"

// Dates travel as "2006-01-02"; the wizard cares about calendar days only.
const DateLayout = "2006-01-02"

// StayInput carries the step-1 fields. Every field is optional: the UI
// pushes partial updates as the user fills the form, and the wizard
// recomputes its summary after each one.
type StayInput struct {
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
	// Room is a numeric room ID or a type name ("JUNIOR").
	Room *string `json:"room,omitempty"`
}

func (s StayInput) ParseCheckIn() (time.Time, bool, error) {
	return parseDate(s.CheckIn)
}

func (s StayInput) ParseCheckOut() (time.Time, bool, error) {
	return parseDate(s.CheckOut)
}

func parseDate(v *string) (time.Time, bool, error) {
	if v == nil {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(DateLayout, *v)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// GuestInput carries the step-2 fields; same partial-update contract.
type GuestInput struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Email      *string `json:"email,omitempty"`
	CardNumber *string `json:"cardNumber,omitempty"`
}
