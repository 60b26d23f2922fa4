package components

import (
	"context"
	"log/slog"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra/session"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	wizardModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSeasonRule,
	fx.Annotate(
		booking.NewSeasonalPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
)

// NewSeasonRule resolves the pricing rule once at startup. Changing the
// settings rows takes effect on the next restart.
func NewSeasonRule(store usecase.SettingsReadStore, logger *slog.Logger) (booking.SeasonRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return usecase.LoadSeasonRule(ctx, store, logger)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
	),
)

var wizardModule = fx.Module("usecase/wizard",
	fx.Provide(
		NewWizardStore,
		func(s *session.Store) usecase.WizardStore { return s },
		usecase.NewWizardService,
	),
	fx.Invoke(startWizardSweeper),
)

func NewWizardStore(cfg config.Config, clk clock.Clock) *session.Store {
	return session.NewStore(cfg.Wizard.SessionTTL, clk)
}

// startWizardSweeper periodically evicts abandoned wizard instances so the
// in-memory store cannot grow without bound.
func startWizardSweeper(lc fx.Lifecycle, cfg config.Config, store *session.Store, logger *slog.Logger) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			interval := cfg.Wizard.SessionTTL / 2
			if interval < time.Minute {
				interval = time.Minute
			}
			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							logger.Info("swept abandoned wizard instances", "count", n)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}
