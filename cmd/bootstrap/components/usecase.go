package components

import (
	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/infra/metrics"
	"manga-cafe-billing/internal/pkg/clock"
	"manga-cafe-billing/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewFeeUseCase,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.Real,
	fx.Annotate(
		fee.NewDefaultCalculator,
		fx.As(new(usecase.FeeCalculator)),
	),
	fx.Annotate(
		metrics.NewQuoteMetrics,
		fx.As(new(usecase.QuoteRecorder)),
	),
)
