package components

import (
	"fleet-rental/internal/handler"
	"fleet-rental/internal/handler/api"
	"fleet-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewRuleHandler,
		api.NewPaymentHandler,
		api.NewVehicleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
