package components

import (
	"manga-cafe-billing/internal/handler"
	"manga-cafe-billing/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFeeHandler,
	),
	fx.Invoke(handler.NewRouter),
)
