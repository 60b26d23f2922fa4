package booking

import "time"

// SeasonRule classifies calendar months into high and low season. It is
// user-editable configuration, loaded once at startup by the settings
// collaborator and injected into the price calculator; the engine never
// reads it from ambient state.
type SeasonRule struct {
	HighSeasonMonths  []time.Month
	HighSeasonPercent float64
	// LowSeasonPercent is captured and persisted but currently has no
	// effect on pricing; no discount application was ever observed.
	LowSeasonPercent float64
}

// DefaultSeasonRule matches the deployed configuration: April, July, August
// and December carry a 20% surcharge.
func DefaultSeasonRule() SeasonRule {
	return SeasonRule{
		HighSeasonMonths:  []time.Month{time.April, time.July, time.August, time.December},
		HighSeasonPercent: 20,
		LowSeasonPercent:  10,
	}
}

func (r SeasonRule) IsHighSeason(m time.Month) bool {
	for _, hm := range r.HighSeasonMonths {
		if hm == m {
			return true
		}
	}
	return false
}
