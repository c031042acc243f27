package components

import (
	"booth-reservation/internal/handler"
	"booth-reservation/internal/handler/api"
	"booth-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewBoothHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		func(e *api.EventHandler, b *api.BoothHandler, r *api.ReservationHandler) handler.Handlers {
			return handler.Handlers{Events: e, Booths: b, Reservations: r}
		},
	),
	fx.Invoke(handler.NewRouter),
)
