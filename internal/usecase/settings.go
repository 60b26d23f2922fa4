package usecase

import (
	"context"
	"log/slog"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"
)

// SettingsReadStore is the settings-persistence collaborator holding the
// user-editable season percentages.
type SettingsReadStore interface {
	SeasonRule(ctx context.Context) (booking.SeasonRule, error)
}

// LoadSeasonRule fetches the season configuration once at startup. Missing
// settings fall back to the deployed defaults so a fresh database still
// prices correctly.
func LoadSeasonRule(ctx context.Context, store SettingsReadStore, logger *slog.Logger) (booking.SeasonRule, error) {
	rule, err := store.SeasonRule(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			logger.Warn("season settings missing, using defaults")
			return booking.DefaultSeasonRule(), nil
		}
		return booking.SeasonRule{}, err
	}

	logger.Info("season rule loaded",
		"high_season_months", len(rule.HighSeasonMonths),
		"high_season_percent", rule.HighSeasonPercent,
	)
	return rule, nil
}
