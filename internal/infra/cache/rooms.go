// Package cache layers a redis snapshot cache over the room catalog. The
// catalog changes only through admin CRUD, and the pricing engine tolerates
// stale snapshots, so a short TTL is all the invalidation needed.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"booking-core/internal/domain/room"
	"booking-core/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "rooms:catalog"

type roomRecord struct {
	ID                 int32    `json:"id"`
	Number             int32    `json:"number"`
	Type               string   `json:"type"`
	Status             string   `json:"status"`
	BaseDailyRateCents int64    `json:"base_daily_rate_cents"`
	Features           []string `json:"features"`
	ImageURL           string   `json:"image_url"`
}

// CachedRoomReadStore decorates the Postgres store. Cache failures are
// logged and fall through to the database; redis being down must never take
// the booking flow with it.
type CachedRoomReadStore struct {
	inner  queries.RoomReadStore
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRoomReadStore(inner queries.RoomReadStore, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRoomReadStore {
	return &CachedRoomReadStore{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func (s *CachedRoomReadStore) List(ctx context.Context) ([]*room.Room, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	rooms, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, rooms)
	return rooms, nil
}

// FindByID is served straight from Postgres; single-row lookups are not
// worth a second cache shape.
func (s *CachedRoomReadStore) FindByID(ctx context.Context, id int32) (*room.Room, error) {
	return s.inner.FindByID(ctx, id)
}

func (s *CachedRoomReadStore) fromCache(ctx context.Context) ([]*room.Room, bool) {
	val, err := s.rdb.Get(ctx, catalogKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("room catalog cache read failed", "error", err)
		}
		return nil, false
	}

	var records []roomRecord
	if err := json.Unmarshal([]byte(val), &records); err != nil {
		s.logger.Warn("room catalog cache entry malformed, ignoring", "error", err)
		return nil, false
	}

	rooms := make([]*room.Room, len(records))
	for i, rec := range records {
		rooms[i] = room.Reconstruct(rec.ID, rec.Number, room.Type(rec.Type), room.Status(rec.Status), rec.BaseDailyRateCents, rec.Features, rec.ImageURL)
	}
	return rooms, true
}

func (s *CachedRoomReadStore) toCache(ctx context.Context, rooms []*room.Room) {
	records := make([]roomRecord, len(rooms))
	for i, r := range rooms {
		records[i] = roomRecord{
			ID:                 r.ID(),
			Number:             r.Number(),
			Type:               r.Type().String(),
			Status:             r.Status().String(),
			BaseDailyRateCents: r.BaseDailyRateCents(),
			Features:           r.Features(),
			ImageURL:           r.ImageURL(),
		}
	}

	b, err := json.Marshal(records)
	if err != nil {
		s.logger.Warn("room catalog cache marshal failed", "error", err)
		return
	}
	if err := s.rdb.Set(ctx, catalogKey, b, s.ttl).Err(); err != nil {
		s.logger.Warn("room catalog cache write failed", "error", err)
	}
}
