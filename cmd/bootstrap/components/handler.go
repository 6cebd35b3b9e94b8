package components

import (
	"resource-desk/internal/handler"
	"resource-desk/internal/handler/api"
	"resource-desk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBorrowingHandler,
		api.NewBookingHandler,
		api.NewAcquiringHandler,
		api.NewMyRequestsHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
