//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/booking"
)

type ReservationRequestBuilder struct {
	FirstName  string
	LastName   string
	Email      string
	CardNumber string
	RoomID     int32
	CheckIn    time.Time
	CheckOut   time.Time
}

func NewReservationRequestBuilder() *ReservationRequestBuilder {
	return &ReservationRequestBuilder{
		FirstName:  "Maria",
		LastName:   "Lopez",
		Email:      "maria.lopez@example.com",
		CardNumber: "4111111111111111",
		RoomID:     7,
		CheckIn:    time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationRequestBuilder) With(mutate func(*ReservationRequestBuilder)) *ReservationRequestBuilder {
	mutate(b)
	return b
}

func (b *ReservationRequestBuilder) Build() booking.ReservationRequest {
	stay, _ := booking.NewStayRange(b.CheckIn, b.CheckOut)
	return booking.ReservationRequest{
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		CardNumber: b.CardNumber,
		RoomID:     b.RoomID,
		Stay:       stay,
	}
}
