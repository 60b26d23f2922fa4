package readstore

import (
	"context"
	"time"

	"booking-core/internal/domain/room"
	"booking-core/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityReadStore struct {
	db *pgxpool.Pool
}

func NewAvailabilityReadStore(db *pgxpool.Pool) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

const selectFreeRooms = `
SELECT r.id, r.number, r.type, r.status, r.base_daily_rate_cents, r.features, r.image_url
FROM rooms r
WHERE ($3 = 'all' OR r.type = $3)
  AND NOT EXISTS (
      SELECT 1 FROM reservations res
      WHERE res.room_id = r.id
        AND res.check_in < $2
        AND res.check_out > $1
  )
ORDER BY r.number`

// FreeRooms returns the rooms with no reservation overlapping
// [checkIn, checkOut). Costing is the caller's job; this is pure filtering.
func (s *AvailabilityReadStore) FreeRooms(ctx context.Context, checkIn, checkOut time.Time, typeFilter string) ([]*room.Room, error) {
	rows, err := s.db.Query(ctx, selectFreeRooms, checkIn, checkOut, typeFilter)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "availability query failed", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}
