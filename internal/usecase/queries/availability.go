package queries

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/room"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
)

// AvailabilityReadStore returns the rooms with no reservation overlapping
// the given range, optionally restricted to one type
// (room.TypeFilterAll disables the restriction).
type AvailabilityReadStore interface {
	FreeRooms(ctx context.Context, checkIn, checkOut time.Time, typeFilter string) ([]*room.Room, error)
}

type AvailabilityQueries interface {
	Search(ctx context.Context, checkIn, checkOut time.Time, typeFilter string) ([]*AvailabilityRow, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	calc  booking.PriceCalculator
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, calc booking.PriceCalculator, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, calc: calc, clock: clk}
}

// Search shapes the three query parameters, delegates the filtering to the
// store and prices each hit. An empty result is a normal outcome, never an
// error; store failures propagate.
func (q *availabilityQueriesImpl) Search(ctx context.Context, checkIn, checkOut time.Time, typeFilter string) ([]*AvailabilityRow, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}
	if typeFilter == "" {
		typeFilter = room.TypeFilterAll
	}

	rooms, err := q.store.FreeRooms(ctx, stay.CheckIn(), stay.CheckOut(), typeFilter)
	if err != nil {
		return nil, errs.Wrap(err, "availability query failed")
	}

	now := q.clock.Now()
	rows := make([]*AvailabilityRow, len(rooms))
	for i, r := range rooms {
		quote := q.calc.Quote(r, stay.Nights(), now)
		rows[i] = &AvailabilityRow{
			RoomNumber:    r.Number(),
			RoomType:      r.Type().String(),
			StayCostCents: quote.Total.Cents(),
		}
	}
	return rows, nil
}
