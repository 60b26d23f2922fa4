//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/room"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/queries"
	"booking-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityStore struct {
	rooms      []*room.Room
	err        error
	typeFilter string
}

func (f *fakeAvailabilityStore) FreeRooms(_ context.Context, _, _ time.Time, typeFilter string) ([]*room.Room, error) {
	f.typeFilter = typeFilter
	return f.rooms, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailabilitySearch(t *testing.T) {
	ctx := context.Background()
	calc := booking.NewSeasonalPriceCalculator(booking.DefaultSeasonRule())

	t.Run("prices each free room for the stay", func(t *testing.T) {
		store := &fakeAvailabilityStore{rooms: []*room.Room{
			builder.NewRoomBuilder().WithID(1).WithType(room.TypeStandard).WithRate(8000).Build(),
			builder.NewRoomBuilder().WithID(7).WithType(room.TypeJunior).WithRate(10000).Build(),
		}}
		clk := clock.NewFrozenClock(date(2026, time.March, 1))
		q := queries.NewAvailabilityQueries(store, calc, clk)

		rows, err := q.Search(ctx, date(2026, time.March, 10), date(2026, time.March, 12), "")
		require.NoError(t, err)

		require.Len(t, rows, 2)
		assert.Equal(t, int64(16000), rows[0].StayCostCents)
		assert.Equal(t, int64(20000), rows[1].StayCostCents)
		assert.Equal(t, "JUNIOR", rows[1].RoomType)
	})

	t.Run("search date drives the surcharge", func(t *testing.T) {
		store := &fakeAvailabilityStore{rooms: []*room.Room{
			builder.NewRoomBuilder().WithRate(10000).Build(),
		}}
		clk := clock.NewFrozenClock(date(2026, time.July, 1))
		q := queries.NewAvailabilityQueries(store, calc, clk)

		rows, err := q.Search(ctx, date(2026, time.October, 10), date(2026, time.October, 12), "")
		require.NoError(t, err)
		assert.Equal(t, int64(24000), rows[0].StayCostCents)
	})

	t.Run("empty filter becomes the all sentinel", func(t *testing.T) {
		store := &fakeAvailabilityStore{}
		q := queries.NewAvailabilityQueries(store, calc, clock.NewRealClock())

		_, err := q.Search(ctx, date(2026, time.March, 10), date(2026, time.March, 12), "")
		require.NoError(t, err)
		assert.Equal(t, room.TypeFilterAll, store.typeFilter)
	})

	t.Run("explicit filter passes through", func(t *testing.T) {
		store := &fakeAvailabilityStore{}
		q := queries.NewAvailabilityQueries(store, calc, clock.NewRealClock())

		_, err := q.Search(ctx, date(2026, time.March, 10), date(2026, time.March, 12), "JUNIOR")
		require.NoError(t, err)
		assert.Equal(t, "JUNIOR", store.typeFilter)
	})

	t.Run("inverted range is rejected before the store", func(t *testing.T) {
		store := &fakeAvailabilityStore{err: errors.New("should not be called")}
		q := queries.NewAvailabilityQueries(store, calc, clock.NewRealClock())

		_, err := q.Search(ctx, date(2026, time.March, 12), date(2026, time.March, 10), "")
		assert.ErrorIs(t, err, errs.ErrInvalidStayRange)
		assert.Empty(t, store.typeFilter)
	})

	t.Run("store failures propagate", func(t *testing.T) {
		store := &fakeAvailabilityStore{err: errors.New("db down")}
		q := queries.NewAvailabilityQueries(store, calc, clock.NewRealClock())

		_, err := q.Search(ctx, date(2026, time.March, 10), date(2026, time.March, 12), "")
		assert.Error(t, err)
	})
}
