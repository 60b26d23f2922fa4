package room

// Type is the room category ("ESTANDAR", "JUNIOR", ...). The catalog is
// admin-managed, so the set is open; these are the values the seed data uses.
type Type string

const (
	TypeStandard Type = "ESTANDAR"
	TypeJunior   Type = "JUNIOR"
	TypeDeluxe   Type = "DELUXE"
)

func (t Type) String() string {
	return string(t)
}

// TypeFilterAll disables type filtering in availability queries.
const TypeFilterAll = "all"

type Status string

const (
	StatusFree     Status = "FREE"
	StatusOccupied Status = "OCCUPIED"
	StatusCleaning Status = "CLEANING"
	StatusDisabled Status = "DISABLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusOccupied, StatusCleaning, StatusDisabled:
		return true
	default:
		return false
	}
}
