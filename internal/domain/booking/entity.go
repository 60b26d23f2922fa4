package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNoRoom        = errors.New("reservation must reference a room")
)

// Reservation is the persisted outcome of a completed wizard run. The
// server-assigned ID is the authoritative identifier; the wizard's
// confirmation code is display-only and never stored here.
type Reservation struct {
	id         uuid.UUID
	roomID     int32
	firstName  string
	lastName   string
	email      Email
	cardNumber CardNumber
	stay       StayRange
	total      Money
	createdAt  time.Time
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) RoomID() int32          { return r.roomID }
func (r *Reservation) FirstName() string      { return r.firstName }
func (r *Reservation) LastName() string       { return r.lastName }
func (r *Reservation) Email() Email           { return r.email }
func (r *Reservation) CardNumber() CardNumber { return r.cardNumber }
func (r *Reservation) Stay() StayRange        { return r.stay }
func (r *Reservation) Total() Money           { return r.total }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
