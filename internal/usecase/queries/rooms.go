package queries

import (
	"context"

	"booking-core/internal/domain/room"
	"booking-core/internal/pkg/errs"
)

// RoomReadStore serves catalog reads. The production wiring layers a redis
// snapshot cache over the Postgres store; both sides implement this.
type RoomReadStore interface {
	List(ctx context.Context) ([]*room.Room, error)
	FindByID(ctx context.Context, id int32) (*room.Room, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	// Catalog returns domain entities for pricing; the views above are for
	// rendering selectors.
	Catalog(ctx context.Context) ([]*room.Room, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	views := make([]*RoomView, len(rooms))
	for i, r := range rooms {
		views[i] = roomToView(r)
	}
	return views, nil
}

func (q *roomQueriesImpl) Catalog(ctx context.Context) ([]*room.Room, error) {
	rooms, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load room catalog")
	}
	return rooms, nil
}

func roomToView(r *room.Room) *RoomView {
	return &RoomView{
		ID:                 r.ID(),
		Number:             r.Number(),
		Type:               r.Type().String(),
		Status:             r.Status().String(),
		BaseDailyRateCents: r.BaseDailyRateCents(),
		Features:           r.Features(),
		ImageURL:           r.ImageURL(),
	}
}
