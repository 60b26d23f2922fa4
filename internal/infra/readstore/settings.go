package readstore

import (
	"context"
	"strconv"
	"strings"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsReadStore reads the user-editable season percentages from the
// hotel_settings key/value table. These used to live in ad-hoc browser
// storage; here they are plain rows loaded once at startup.
type SettingsReadStore struct {
	db *pgxpool.Pool
}

func NewSettingsReadStore(db *pgxpool.Pool) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

const (
	keyHighSeasonMonths  = "high_season_months"
	keyHighSeasonPercent = "high_season_percent"
	keyLowSeasonPercent  = "low_season_percent"
)

func (s *SettingsReadStore) SeasonRule(ctx context.Context) (booking.SeasonRule, error) {
	rows, err := s.db.Query(ctx,
		"SELECT key, value FROM hotel_settings WHERE key = ANY($1)",
		[]string{keyHighSeasonMonths, keyHighSeasonPercent, keyLowSeasonPercent},
	)
	if err != nil {
		return booking.SeasonRule{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to load settings", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return booking.SeasonRule{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan setting row", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return booking.SeasonRule{}, infra.WrapRepoErr(infra.KindDBFailure, "settings rows iteration failed", err)
	}

	if len(values) == 0 {
		return booking.SeasonRule{}, infra.NewRepoErr(infra.KindNotFound, "season settings not configured")
	}

	rule := booking.DefaultSeasonRule()
	if v, ok := values[keyHighSeasonMonths]; ok {
		months, err := parseMonths(v)
		if err != nil {
			return booking.SeasonRule{}, infra.WrapRepoErr(infra.KindDBFailure, "malformed high_season_months setting", err)
		}
		rule.HighSeasonMonths = months
	}
	if v, ok := values[keyHighSeasonPercent]; ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return booking.SeasonRule{}, infra.WrapRepoErr(infra.KindDBFailure, "malformed high_season_percent setting", err)
		}
		rule.HighSeasonPercent = p
	}
	if v, ok := values[keyLowSeasonPercent]; ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return booking.SeasonRule{}, infra.WrapRepoErr(infra.KindDBFailure, "malformed low_season_percent setting", err)
		}
		rule.LowSeasonPercent = p
	}
	return rule, nil
}

// parseMonths reads a comma-separated month-number list ("4,7,8,12").
func parseMonths(v string) ([]time.Month, error) {
	parts := strings.Split(v, ",")
	months := make([]time.Month, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		months = append(months, time.Month(n))
	}
	return months, nil
}
