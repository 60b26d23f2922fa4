package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")

	// Reservation errors. The "room not available" text is the conflict
	// marker the reservation wizard matches on to pick its banner message.
	ErrRoomUnavailable     = errors.New("room not available")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStayRange    = errors.New("invalid stay range")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
