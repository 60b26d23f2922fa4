//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/room"
	"booking-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestSeasonalPriceCalculator(t *testing.T) {
	calc := booking.NewSeasonalPriceCalculator(booking.DefaultSeasonRule())
	r := builder.NewRoomBuilder().WithRate(10000).Build()

	t.Run("low season is base rate times nights", func(t *testing.T) {
		q := calc.Quote(r, 2, date(2026, time.March, 15))
		assert.Equal(t, int64(20000), q.Total.Cents())
		assert.Equal(t, 2, q.Nights)
		assert.Same(t, r, q.Room)
	})

	t.Run("high season adds twenty percent", func(t *testing.T) {
		q := calc.Quote(r, 2, date(2026, time.April, 15))
		assert.Equal(t, int64(24000), q.Total.Cents())
	})

	t.Run("surcharge keys off asOf month, not the stay", func(t *testing.T) {
		// The stay itself is irrelevant to the surcharge; only the
		// computation date decides.
		july := calc.Quote(r, 5, date(2026, time.July, 1))
		march := calc.Quote(r, 5, date(2026, time.March, 1))
		assert.Equal(t, int64(60000), july.Total.Cents())
		assert.Equal(t, int64(50000), march.Total.Cents())
	})

	t.Run("every configured high month surcharges", func(t *testing.T) {
		for _, m := range []time.Month{time.April, time.July, time.August, time.December} {
			q := calc.Quote(r, 1, date(2026, m, 10))
			assert.Equal(t, int64(12000), q.Total.Cents(), "month %s", m)
		}
	})

	t.Run("low season percent is held but not applied", func(t *testing.T) {
		rule := booking.DefaultSeasonRule()
		assert.Equal(t, float64(10), rule.LowSeasonPercent)
		q := calc.Quote(r, 1, date(2026, time.February, 10))
		assert.Equal(t, int64(10000), q.Total.Cents())
	})
}

func TestFindRoom(t *testing.T) {
	catalog := []*room.Room{
		builder.NewRoomBuilder().WithID(1).WithType(room.TypeStandard).Build(),
		builder.NewRoomBuilder().WithID(7).WithType(room.TypeJunior).Build(),
		builder.NewRoomBuilder().WithID(9).WithType(room.TypeDeluxe).Build(),
	}

	cases := []struct {
		name      string
		criterion string
		wantID    int32
		wantOK    bool
	}{
		{"numeric id", "7", 7, true},
		{"unknown id", "42", 0, false},
		{"type name", "JUNIOR", 7, true},
		{"type name case-insensitive", "junior", 7, true},
		{"first match wins for type", "ESTANDAR", 1, true},
		{"unknown type", "SUITE", 0, false},
		{"empty criterion", "", 0, false},
		{"whitespace only", "   ", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := booking.FindRoom(catalog, tc.criterion)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantID, r.ID())
			} else {
				assert.Nil(t, r)
			}
		})
	}
}
