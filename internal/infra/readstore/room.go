package readstore

import (
	"context"
	"errors"

	"booking-core/internal/domain/room"
	"booking-core/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomReadStore struct {
	db *pgxpool.Pool
}

func NewRoomReadStore(db *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{db: db}
}

const selectRooms = `
SELECT id, number, type, status, base_daily_rate_cents, features, image_url
FROM rooms
ORDER BY number`

func (s *RoomReadStore) List(ctx context.Context) ([]*room.Room, error) {
	rows, err := s.db.Query(ctx, selectRooms)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list rooms", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

const selectRoomByID = `
SELECT id, number, type, status, base_daily_rate_cents, features, image_url
FROM rooms
WHERE id = $1`

func (s *RoomReadStore) FindByID(ctx context.Context, id int32) (*room.Room, error) {
	r, err := scanRoom(s.db.QueryRow(ctx, selectRoomByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find room", err)
	}
	return r, nil
}

func scanRooms(rows pgx.Rows) ([]*room.Room, error) {
	var result []*room.Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room row", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "room rows iteration failed", err)
	}
	return result, nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id, number int32
		roomType   string
		status     string
		rateCents  int64
		features   []string
		imageURL   string
	)
	if err := row.Scan(&id, &number, &roomType, &status, &rateCents, &features, &imageURL); err != nil {
		return nil, err
	}
	return room.Reconstruct(id, number, room.Type(roomType), room.Status(status), rateCents, features, imageURL), nil
}
