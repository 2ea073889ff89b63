package usecase

//go:generate mockgen -source=fee.go -destination=../../tests/mock/usecase/mock_fee.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/domain/plan"
	"manga-cafe-billing/internal/pkg/clock"
	"manga-cafe-billing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlan     = fee.ErrInvalidPlan
	ErrInvalidInterval = fee.ErrInvalidInterval
)

const (
	RejectInvalidPlan     = "invalid_plan"
	RejectInvalidInterval = "invalid_interval"
	RejectInternal        = "internal"
)

type QuoteParams struct {
	PlanID   string
	CheckIn  time.Time
	CheckOut time.Time
}

type Quote struct {
	ID       uuid.UUID
	IssuedAt time.Time
	fee.Result
}

type FeeUseCase interface {
	ListPlans(ctx context.Context) []plan.Definition
	Quote(ctx context.Context, params QuoteParams) (*Quote, error)
}

type feeUseCaseImpl struct {
	calculator FeeCalculator
	recorder   QuoteRecorder
	clock      clock.Clock
	logger     *slog.Logger
}

func NewFeeUseCase(calculator FeeCalculator, recorder QuoteRecorder, clk clock.Clock, logger *slog.Logger) FeeUseCase {
	if recorder == nil {
		recorder = NopRecorder()
	}
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &feeUseCaseImpl{
		calculator: calculator,
		recorder:   recorder,
		clock:      clk,
		logger:     logger,
	}
}

func (uc *feeUseCaseImpl) ListPlans(_ context.Context) []plan.Definition {
	return plan.All()
}

func (uc *feeUseCaseImpl) Quote(ctx context.Context, params QuoteParams) (*Quote, error) {
	result, err := uc.calculator.Calculate(params.CheckIn, params.CheckOut, plan.ID(params.PlanID))
	if err != nil {
		reason := rejectReason(err)
		uc.recorder.QuoteRejected(params.PlanID, reason)
		if reason == RejectInternal {
			return nil, errs.Wrap(err, "calculate fee")
		}
		uc.logger.InfoContext(ctx, "quote rejected",
			"plan_id", params.PlanID,
			"reason", reason,
			"error", err.Error(),
		)
		return nil, err
	}

	uc.recorder.QuoteCalculated(result)

	q := &Quote{ID: uuid.New(), IssuedAt: uc.clock.Now(), Result: result}
	uc.logger.DebugContext(ctx, "quote calculated",
		"quote_id", q.ID.String(),
		"plan_id", result.Plan.ID.String(),
		"elapsed_minutes", result.ElapsedMinutes,
		"extension_minutes", result.ExtensionMinutes,
		"night_blocks", result.NightBlocks(),
		"total_including_tax", result.TotalIncludingTax,
	)
	return q, nil
}

func rejectReason(err error) string {
	switch {
	case errs.Is(err, ErrInvalidPlan):
		return RejectInvalidPlan
	case errs.Is(err, ErrInvalidInterval):
		return RejectInvalidInterval
	default:
		return RejectInternal
	}
}

// IsRejected reports whether err comes from invalid caller input rather than a fault.
func IsRejected(err error) bool {
	return err != nil && rejectReason(err) != RejectInternal
}
