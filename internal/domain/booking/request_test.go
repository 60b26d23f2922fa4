//go:build unit

package booking_test

import (
	"testing"

	"booking-core/internal/domain/booking"
	"booking-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestCase struct {
	name       string
	mutate     func(*builder.ReservationRequestBuilder)
	wantFields []string
	errIs      error
}

func TestReservationRequestValidate(t *testing.T) {
	t.Run("complete request passes", func(t *testing.T) {
		req := builder.NewReservationRequestBuilder().Build()
		assert.Empty(t, req.Validate())
	})

	t.Run("required fields", func(t *testing.T) {
		runRequestCases(t, []requestCase{
			{
				name:       "missing first name",
				mutate:     func(b *builder.ReservationRequestBuilder) { b.FirstName = "" },
				wantFields: []string{"firstName"},
				errIs:      booking.ErrMissingFields,
			},
			{
				name:       "whitespace last name",
				mutate:     func(b *builder.ReservationRequestBuilder) { b.LastName = "   " },
				wantFields: []string{"lastName"},
				errIs:      booking.ErrMissingFields,
			},
			{
				name:       "missing room",
				mutate:     func(b *builder.ReservationRequestBuilder) { b.RoomID = 0 },
				wantFields: []string{"roomId"},
				errIs:      booking.ErrMissingFields,
			},
			{
				name: "everything missing reports every field",
				mutate: func(b *builder.ReservationRequestBuilder) {
					*b = builder.ReservationRequestBuilder{}
				},
				wantFields: []string{"firstName", "lastName", "email", "cardNumber", "roomId", "stay"},
				errIs:      booking.ErrMissingFields,
			},
		})
	})

	t.Run("shape checks run only on a complete form", func(t *testing.T) {
		runRequestCases(t, []requestCase{
			{
				name:       "malformed email",
				mutate:     func(b *builder.ReservationRequestBuilder) { b.Email = "not-an-email" },
				wantFields: []string{"email"},
				errIs:      booking.ErrInvalidEmail,
			},
			{
				name:       "short card",
				mutate:     func(b *builder.ReservationRequestBuilder) { b.CardNumber = "4111" },
				wantFields: []string{"cardNumber"},
				errIs:      booking.ErrInvalidCard,
			},
			{
				name: "both malformed",
				mutate: func(b *builder.ReservationRequestBuilder) {
					b.Email = "nope"
					b.CardNumber = "12"
				},
				wantFields: []string{"email", "cardNumber"},
			},
			{
				name: "missing field suppresses shape errors",
				mutate: func(b *builder.ReservationRequestBuilder) {
					b.FirstName = ""
					b.Email = "not-an-email"
				},
				wantFields: []string{"firstName"},
				errIs:      booking.ErrMissingFields,
			},
		})
	})
}

func runRequestCases(t *testing.T, cases []requestCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationRequestBuilder()
			tc.mutate(b)
			fieldErrs := b.Build().Validate()

			require.Len(t, fieldErrs, len(tc.wantFields))
			for i, want := range tc.wantFields {
				assert.Equal(t, want, fieldErrs[i].Field)
			}
			if tc.errIs != nil {
				assert.ErrorIs(t, fieldErrs[0], tc.errIs)
			}
		})
	}
}
