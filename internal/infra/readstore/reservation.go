package readstore

import (
	"context"
	"errors"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	db *pgxpool.Pool
}

func NewReservationReadStore(db *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const selectReservation = `
SELECT res.id, res.room_id, r.number, r.type,
       res.first_name, res.last_name, res.email, res.card_last4,
       res.check_in, res.check_out, res.total_cents, res.created_at
FROM reservations res
JOIN rooms r ON r.id = res.room_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, selectReservation+" WHERE res.id = $1", id)

	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) List(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, selectReservation+" ORDER BY res.created_at DESC")
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "reservation rows iteration failed", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v                 queries.ReservationView
		checkIn, checkOut time.Time
	)
	if err := row.Scan(
		&v.ID, &v.RoomID, &v.RoomNumber, &v.RoomType,
		&v.FirstName, &v.LastName, &v.Email, &v.CardLast4,
		&checkIn, &checkOut, &v.TotalCents, &v.CreatedAt,
	); err != nil {
		return nil, err
	}
	v.CheckIn = checkIn
	v.CheckOut = checkOut
	v.Nights = booking.Nights(checkIn, checkOut)
	return &v, nil
}
