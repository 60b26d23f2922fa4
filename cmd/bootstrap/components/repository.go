package components

import (
	"log/slog"

	"booking-core/internal/infra/cache"
	"booking-core/internal/infra/mail"
	"booking-core/internal/infra/readstore"
	repo_impl "booking-core/internal/infra/repository"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(pool *pgxpool.Pool) commands.ReservationRepository {
			return repo_impl.NewReservationRepository(pool)
		},
		// Commands read rooms straight from Postgres; only the catalog
		// queries go through the redis cache below.
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(commands.RoomRepository)),
		),
		NewCachedRoomReadStore,
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(usecase.SettingsReadStore)),
		),
		func(cfg config.Config, logger *slog.Logger) commands.ReservationNotifier {
			return mail.NewMailer(cfg.Mail, logger)
		},
	),
)

func NewCachedRoomReadStore(pool *pgxpool.Pool, rdb *redis.Client, cfg config.Config, logger *slog.Logger) queries.RoomReadStore {
	base := readstore.NewRoomReadStore(pool)
	return cache.NewCachedRoomReadStore(base, rdb, cfg.Redis.CatalogTTL, logger)
}
