package booking

import (
	"strconv"
	"strings"
	"time"

	"booking-core/internal/domain/room"
)

// Quote is a derived nights/price pair for one room and stay. It is never
// persisted.
type Quote struct {
	Room   *room.Room
	Nights int
	Total  Money
}

type PriceCalculator interface {
	// Quote prices a stay of nights >= 1; callers guard the precondition.
	Quote(r *room.Room, nights int, asOf time.Time) Quote
}

// SeasonalPriceCalculator multiplies the base stay price by the high-season
// surcharge when asOf falls in a high-season month.
//
// Note that the surcharge keys off asOf (in practice the current date at
// computation time), not the months the stay occupies. That is the behavior
// of the system this replaces, kept intact; asOf is an explicit parameter so
// the rule stays testable.
type SeasonalPriceCalculator struct {
	rule SeasonRule
}

func NewSeasonalPriceCalculator(rule SeasonRule) *SeasonalPriceCalculator {
	return &SeasonalPriceCalculator{rule: rule}
}

func (c *SeasonalPriceCalculator) Quote(r *room.Room, nights int, asOf time.Time) Quote {
	total := NewMoney(r.BaseDailyRateCents()).Mul(nights)
	if c.rule.IsHighSeason(asOf.Month()) {
		total = total.ApplySurcharge(c.rule.HighSeasonPercent)
	}
	return Quote{Room: r, Nights: nights, Total: total}
}

func (c *SeasonalPriceCalculator) Rule() SeasonRule {
	return c.rule
}

// FindRoom resolves a selection criterion against a catalog snapshot. The
// criterion is either a numeric room ID or a type name; a miss is a normal
// outcome (the user may simply not have picked a room yet), not an error.
func FindRoom(catalog []*room.Room, criterion string) (*room.Room, bool) {
	criterion = strings.TrimSpace(criterion)
	if criterion == "" {
		return nil, false
	}

	if id, err := strconv.ParseInt(criterion, 10, 32); err == nil {
		for _, r := range catalog {
			if r.ID() == int32(id) {
				return r, true
			}
		}
		return nil, false
	}

	for _, r := range catalog {
		if strings.EqualFold(string(r.Type()), criterion) {
			return r, true
		}
	}
	return nil, false
}
