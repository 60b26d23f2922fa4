package commands

import (
	"context"
	"log/slog"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/room"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	// Create persists the reservation unless another one overlaps the same
	// room and range, in which case it fails with infra.KindConflict.
	Create(ctx context.Context, res *booking.Reservation) (uuid.UUID, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id int32) (*room.Room, error)
}

// ReservationNotifier delivers the confirmation mail for a booked
// reservation. Delivery runs after the row is committed; a failure is
// logged and never surfaced to the guest.
type ReservationNotifier interface {
	ReservationConfirmed(ctx context.Context, view *queries.ReservationView) error
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, req booking.ReservationRequest) (*queries.ReservationView, error)
}

type bookingCommandsImpl struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	notifier        ReservationNotifier
	factory         *booking.Factory
	logger          *slog.Logger
}

func NewBookingCommands(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	notifier ReservationNotifier,
	factory *booking.Factory,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		notifier:        notifier,
		factory:         factory,
		logger:          logger,
	}
}

func (c *bookingCommandsImpl) CreateReservation(ctx context.Context, req booking.ReservationRequest) (*queries.ReservationView, error) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, errs.Mark(fieldErrs[0], errs.ErrDomainValidation)
	}

	r, err := c.roomRepo.FindByID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	res, err := c.factory.CreateReservation(req, r)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.reservationRepo.Create(ctx, res)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrRoomUnavailable)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.logger.Info("reservation created",
		"reservation_id", id.String(),
		"room_id", res.RoomID(),
		"nights", res.Stay().Nights(),
		"total_cents", res.Total().Cents(),
	)

	view := &queries.ReservationView{
		ID:         id,
		RoomID:     r.ID(),
		RoomNumber: r.Number(),
		RoomType:   r.Type().String(),
		FirstName:  res.FirstName(),
		LastName:   res.LastName(),
		Email:      res.Email().String(),
		CardLast4:  res.CardNumber().Last4(),
		CheckIn:    res.Stay().CheckIn(),
		CheckOut:   res.Stay().CheckOut(),
		Nights:     res.Stay().Nights(),
		TotalCents: res.Total().Cents(),
		CreatedAt:  res.CreatedAt(),
	}

	if err := c.notifier.ReservationConfirmed(ctx, view); err != nil {
		c.logger.Warn("confirmation mail not delivered",
			"reservation_id", id.String(),
			"error", err,
		)
	}

	return view, nil
}
