package booking

import (
	"booking-core/internal/domain/room"
	"booking-core/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory builds priced reservations from validated requests. Clock and
// calculator are injected so pricing is reproducible in tests.
type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

func (f *Factory) CreateReservation(req ReservationRequest, r *room.Room) (*Reservation, error) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs[0]
	}
	if r == nil {
		return nil, ErrNoRoom
	}

	email, err := NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	card, err := NewCardNumber(req.CardNumber)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	quote := f.PriceCalculator.Quote(r, req.Stay.Nights(), now)
	if quote.Total.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:         uuid.New(),
		roomID:     r.ID(),
		firstName:  req.FirstName,
		lastName:   req.LastName,
		email:      email,
		cardNumber: card,
		stay:       req.Stay,
		total:      quote.Total,
		createdAt:  now,
	}, nil
}
