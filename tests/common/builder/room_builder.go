//go:build unit || e2e

package builder

import (
	"booking-core/internal/domain/room"
)

type RoomBuilder struct {
	ID                 int32
	Number             int32
	Type               room.Type
	Status             room.Status
	BaseDailyRateCents int64
	Features           []string
	ImageURL           string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                 7,
		Number:             301,
		Type:               room.TypeJunior,
		Status:             room.StatusFree,
		BaseDailyRateCents: 10000,
		Features:           []string{"wifi", "tv"},
		ImageURL:           "/images/junior.jpg",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithID(id int32) *RoomBuilder {
	b.ID = id
	return b
}

func (b *RoomBuilder) WithType(t room.Type) *RoomBuilder {
	b.Type = t
	return b
}

func (b *RoomBuilder) WithRate(cents int64) *RoomBuilder {
	b.BaseDailyRateCents = cents
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.ID, b.Number, b.Type, b.Status, b.BaseDailyRateCents, b.Features, b.ImageURL)
}

// Build reconstructs without validation, for tests that need a Room and do
// not exercise the constructor.
func (b *RoomBuilder) Build() *room.Room {
	return room.Reconstruct(b.ID, b.Number, b.Type, b.Status, b.BaseDailyRateCents, b.Features, b.ImageURL)
}
