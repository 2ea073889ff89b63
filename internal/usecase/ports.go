package usecase

import (
	"time"

	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/domain/plan"
)

type FeeCalculator interface {
	Calculate(checkIn, checkOut time.Time, id plan.ID) (fee.Result, error)
}

// QuoteRecorder receives the outcome of every quote.
type QuoteRecorder interface {
	QuoteCalculated(result fee.Result)
	QuoteRejected(planID string, reason string)
}

type nopRecorder struct{}

func (nopRecorder) QuoteCalculated(fee.Result)   {}
func (nopRecorder) QuoteRejected(string, string) {}

func NopRecorder() QuoteRecorder {
	return nopRecorder{}
}
