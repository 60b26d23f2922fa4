package room

import "errors"

var (
	ErrInvalidRoomNumber = errors.New("room number must be positive")
	ErrEmptyRoomType     = errors.New("room type cannot be empty")
	ErrNonPositiveRate   = errors.New("base daily rate must be positive")
	ErrInvalidStatus     = errors.New("invalid room status")
)

// Room is a bookable unit. The catalog is owned by the admin CRUD side;
// the booking core only ever reads it.
type Room struct {
	id                 int32
	number             int32
	roomType           Type
	status             Status
	baseDailyRateCents int64
	features           []string
	imageURL           string
}

func NewRoom(id, number int32, roomType Type, status Status, baseDailyRateCents int64, features []string, imageURL string) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidRoomNumber
	}
	if roomType == "" {
		return nil, ErrEmptyRoomType
	}
	if baseDailyRateCents <= 0 {
		return nil, ErrNonPositiveRate
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Room{
		id:                 id,
		number:             number,
		roomType:           roomType,
		status:             status,
		baseDailyRateCents: baseDailyRateCents,
		features:           features,
		imageURL:           imageURL,
	}, nil
}

// Reconstruct rebuilds a Room from storage without re-validating; rows are
// trusted to have passed validation when written.
func Reconstruct(id, number int32, roomType Type, status Status, baseDailyRateCents int64, features []string, imageURL string) *Room {
	return &Room{
		id:                 id,
		number:             number,
		roomType:           roomType,
		status:             status,
		baseDailyRateCents: baseDailyRateCents,
		features:           features,
		imageURL:           imageURL,
	}
}

func (r *Room) IsType(t string) bool {
	return string(r.roomType) == t
}

func (r *Room) ID() int32                 { return r.id }
func (r *Room) Number() int32             { return r.number }
func (r *Room) Type() Type                { return r.roomType }
func (r *Room) Status() Status            { return r.status }
func (r *Room) BaseDailyRateCents() int64 { return r.baseDailyRateCents }
func (r *Room) Features() []string        { return r.features }
func (r *Room) ImageURL() string          { return r.imageURL }
