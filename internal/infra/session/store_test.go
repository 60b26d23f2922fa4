//go:build unit

package session_test

import (
	"sync"
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/room"
	"booking-core/internal/infra/session"
	"booking-core/internal/pkg/clock"
	"booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizard() *booking.Wizard {
	catalog := []*room.Room{builder.NewRoomBuilder().Build()}
	calc := booking.NewSeasonalPriceCalculator(booking.DefaultSeasonRule())
	return booking.NewWizard(catalog, calc, clock.NewRealClock(), nil)
}

func TestStorePutAcquire(t *testing.T) {
	clk := clock.NewFrozenClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := session.NewStore(30*time.Minute, clk)

	w := newWizard()
	store.Put(w)

	got, release, ok := store.Acquire(w.ID())
	require.True(t, ok)
	defer release()
	assert.Same(t, w, got)
	assert.Equal(t, 1, store.Len())
}

func TestStoreAcquireUnknown(t *testing.T) {
	store := session.NewStore(30*time.Minute, clock.NewRealClock())
	_, _, ok := store.Acquire(uuid.New())
	assert.False(t, ok)
}

func TestStoreSerializesPerInstance(t *testing.T) {
	store := session.NewStore(30*time.Minute, clock.NewRealClock())
	w := newWizard()
	store.Put(w)

	// Hammer one instance from many goroutines; the per-instance lock must
	// keep the critical sections disjoint.
	var inside int
	var maxInside int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, release, ok := store.Acquire(w.ID())
			if !ok {
				return
			}
			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
}

func TestStoreSweep(t *testing.T) {
	clk := clock.NewFrozenClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := session.NewStore(30*time.Minute, clk)

	stale := newWizard()
	store.Put(stale)

	clk.Add(20 * time.Minute)
	fresh := newWizard()
	store.Put(fresh)

	clk.Add(15 * time.Minute) // stale is now 35m idle, fresh 15m

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	_, _, ok := store.Acquire(stale.ID())
	assert.False(t, ok)

	_, release, ok := store.Acquire(fresh.ID())
	require.True(t, ok)
	release()
}

func TestStoreAcquireRefreshesTTL(t *testing.T) {
	clk := clock.NewFrozenClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := session.NewStore(30*time.Minute, clk)

	w := newWizard()
	store.Put(w)

	clk.Add(25 * time.Minute)
	_, release, ok := store.Acquire(w.ID())
	require.True(t, ok)
	release()

	clk.Add(25 * time.Minute) // 50m since Put, 25m since last touch
	assert.Equal(t, 0, store.Sweep())
	assert.Equal(t, 1, store.Len())
}
