package components

import (
	"booking-core/internal/handler"
	"booking-core/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		api.NewAvailabilityHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
