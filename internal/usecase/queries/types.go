package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type RoomView struct {
	ID                 int32    `json:"id"`
	Number             int32    `json:"number"`
	Type               string   `json:"type"`
	Status             string   `json:"status"`
	BaseDailyRateCents int64    `json:"base_daily_rate_cents"`
	Features           []string `json:"features,omitempty"`
	ImageURL           string   `json:"image_url,omitempty"`
}

// AvailabilityRow is one line of the availability screen: a free room and
// what the requested stay would cost in it.
type AvailabilityRow struct {
	RoomNumber    int32  `json:"room_number"`
	RoomType      string `json:"room_type"`
	StayCostCents int64  `json:"stay_cost_cents"`
}

type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     int32     `json:"room_id"`
	RoomNumber int32     `json:"room_number"`
	RoomType   string    `json:"room_type"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	CardLast4  string    `json:"card_last4"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}
