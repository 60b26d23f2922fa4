package response

import (
	"time"

	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     int32     `json:"roomId"`
	RoomNumber int32     `json:"roomNumber"`
	RoomType   string    `json:"roomType"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	CardLast4  string    `json:"cardLast4"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RoomResponse struct {
	ID                 int32    `json:"id"`
	Number             int32    `json:"number"`
	Type               string   `json:"type"`
	Status             string   `json:"status"`
	BaseDailyRateCents int64    `json:"baseDailyRateCents"`
	Features           []string `json:"features,omitempty"`
	ImageURL           string   `json:"imageUrl,omitempty"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         rm.ID,
		RoomID:     rm.RoomID,
		RoomNumber: rm.RoomNumber,
		RoomType:   rm.RoomType,
		FirstName:  rm.FirstName,
		LastName:   rm.LastName,
		Email:      rm.Email,
		CardLast4:  rm.CardLast4,
		CheckIn:    rm.CheckIn.Format("2006-01-02"),
		CheckOut:   rm.CheckOut.Format("2006-01-02"),
		Nights:     rm.Nights,
		TotalCents: rm.TotalCents,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:                 rm.ID,
		Number:             rm.Number,
		Type:               rm.Type,
		Status:             rm.Status,
		BaseDailyRateCents: rm.BaseDailyRateCents,
		Features:           rm.Features,
		ImageURL:           rm.ImageURL,
	}
}
