package queries

import (
	"context"

	"booking-core/internal/infra"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
}

// ReservationQueries backs the admin reservation listing.
type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Wrap(err, "failed to load reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return views, nil
}
