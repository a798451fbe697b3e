package components

import (
	"hotelres/internal/handler"
	"hotelres/internal/handler/api"
	"hotelres/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewHoldHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
