package repository

import (
	"context"
	"errors"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE raised by the no_overlap exclusion constraint.
const pgExclusionViolation = "23P01"

// DB is the slice of pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type ReservationRepository struct {
	db DB
}

func NewReservationRepository(db DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Only the last four card digits are stored; nothing ever reads a full PAN
// back out of this table.
const insertReservation = `
INSERT INTO reservations
    (id, room_id, first_name, last_name, email, card_last4, check_in, check_out, total_cents, created_at)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
WHERE NOT EXISTS (
    SELECT 1 FROM reservations r
    WHERE r.room_id = $2
      AND r.check_in < $8
      AND r.check_out > $7
)`

// Create inserts the reservation guarded against overlapping bookings of
// the same room. The WHERE NOT EXISTS check catches overlaps already
// committed when the statement runs; under READ COMMITTED two racing
// inserts can both pass it, so the no_overlap exclusion constraint is the
// authoritative guard and the loser surfaces here as SQLSTATE 23P01.
// Either path reports KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) (uuid.UUID, error) {
	tag, err := r.db.Exec(ctx, insertReservation,
		res.ID(),
		res.RoomID(),
		res.FirstName(),
		res.LastName(),
		res.Email().String(),
		res.CardNumber().Last4(),
		res.Stay().CheckIn(),
		res.Stay().CheckOut(),
		res.Total().Cents(),
		res.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return uuid.Nil, infra.WrapRepoErr(infra.KindConflict, "room not available for the requested range", err)
		}
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.NewRepoErr(infra.KindConflict, "room not available for the requested range")
	}

	return res.ID(), nil
}
