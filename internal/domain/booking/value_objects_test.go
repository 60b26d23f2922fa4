//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two nights", date(2026, 3, 10), date(2026, 3, 12), 2},
		{"single night", date(2026, 3, 10), date(2026, 3, 11), 1},
		{"same day", date(2026, 3, 10), date(2026, 3, 10), 0},
		{"inverted yields negative", date(2026, 3, 12), date(2026, 3, 10), -2},
		{"month boundary", date(2026, 1, 30), date(2026, 2, 2), 3},
		{"year boundary", date(2025, 12, 30), date(2026, 1, 2), 3},
		{"time of day ignored", time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC), time.Date(2026, 3, 12, 0, 1, 0, 0, time.UTC), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.Nights(tc.checkIn, tc.checkOut))
		})
	}
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := booking.NewStayRange(date(2026, 3, 10), date(2026, 3, 12))
		require.NoError(t, err)
		assert.Equal(t, 2, stay.Nights())
		assert.False(t, stay.IsZero())
	})

	t.Run("same day rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2026, 3, 10), date(2026, 3, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidDateOrder)
	})

	t.Run("inverted rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2026, 3, 12), date(2026, 3, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidDateOrder)
	})

	t.Run("normalizes to midnight UTC", func(t *testing.T) {
		stay, err := booking.NewStayRange(
			time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 3, 10), stay.CheckIn())
		assert.Equal(t, date(2026, 3, 12), stay.CheckOut())
	})
}

func TestMoney(t *testing.T) {
	t.Run("multiply by nights", func(t *testing.T) {
		assert.Equal(t, int64(20000), booking.NewMoney(10000).Mul(2).Cents())
	})

	t.Run("surcharge", func(t *testing.T) {
		assert.Equal(t, int64(24000), booking.NewMoney(20000).ApplySurcharge(20).Cents())
	})

	t.Run("surcharge rounds to nearest cent", func(t *testing.T) {
		// 333 * 1.2 = 399.6 -> 400
		assert.Equal(t, int64(400), booking.NewMoney(333).ApplySurcharge(20).Cents())
	})

	t.Run("zero percent is identity", func(t *testing.T) {
		assert.Equal(t, int64(555), booking.NewMoney(555).ApplySurcharge(0).Cents())
	})

	t.Run("dollars", func(t *testing.T) {
		assert.InDelta(t, 123.45, booking.NewMoney(12345).Dollars(), 0.0001)
	})
}

func TestFormatCardDigits(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"full card", "4111111111111111", "4111 1111 1111 1111"},
		{"partial entry", "41111", "4111 1"},
		{"separators stripped", "4111-1111-1111-1111", "4111 1111 1111 1111"},
		{"spaces stripped", "4111 1111 1111 1111", "4111 1111 1111 1111"},
		{"letters dropped", "4111abc1111", "4111 1111 11"},
		{"display capped at 16 digits", "41111111111111112222", "4111 1111 1111 1111"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.FormatCardDigits(tc.in))
		})
	}
}

func TestNewCardNumber(t *testing.T) {
	t.Run("keeps every digit internally", func(t *testing.T) {
		card, err := booking.NewCardNumber("4111-1111-1111-1111-222")
		require.NoError(t, err)
		assert.Equal(t, "4111111111111111222", card.String())
		assert.Equal(t, "1222", card.Last4())
		assert.Equal(t, "4111 1111 1111 1111", card.Display())
	})

	t.Run("thirteen digits is the floor", func(t *testing.T) {
		_, err := booking.NewCardNumber("4111111111111")
		assert.NoError(t, err)

		_, err = booking.NewCardNumber("411111111111")
		assert.ErrorIs(t, err, booking.ErrInvalidCard)
	})

	t.Run("non-digits do not count toward length", func(t *testing.T) {
		_, err := booking.NewCardNumber("4111-1111-1111-")
		assert.ErrorIs(t, err, booking.ErrInvalidCard)
	})
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		errIs error
	}{
		{name: "plain address", in: "guest@example.com"},
		{name: "subdomain", in: "guest@mail.example.co"},
		{name: "trimmed whitespace", in: "  guest@example.com  "},
		{name: "missing at sign", in: "guest.example.com", errIs: booking.ErrInvalidEmail},
		{name: "missing tld dot", in: "guest@example", errIs: booking.ErrInvalidEmail},
		{name: "embedded space", in: "gu est@example.com", errIs: booking.ErrInvalidEmail},
		{name: "empty", in: "", errIs: booking.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewEmail(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
