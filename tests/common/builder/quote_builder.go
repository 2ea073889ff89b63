//go:build unit || e2e

package builder

import (
	"time"

	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/domain/plan"
	reqdto "manga-cafe-billing/internal/handler/dto/request"
	"manga-cafe-billing/internal/usecase"

	"github.com/google/uuid"
)

var JST = time.FixedZone("Asia/Tokyo", 9*60*60)

type QuoteBuilder struct {
	PlanID   plan.ID
	CheckIn  time.Time
	CheckOut time.Time
}

// defaults to a 3-hour pack with 25 minutes of daytime extension
func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		PlanID:   plan.Pack3Hour,
		CheckIn:  time.Date(2025, 6, 4, 14, 0, 0, 0, JST),
		CheckOut: time.Date(2025, 6, 4, 17, 25, 0, 0, JST),
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) WithPlan(id plan.ID) *QuoteBuilder {
	b.PlanID = id
	return b
}

func (b *QuoteBuilder) WithStay(checkIn, checkOut time.Time) *QuoteBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

// Build methods
func (b *QuoteBuilder) BuildRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		PlanID:   b.PlanID.String(),
		CheckIn:  b.CheckIn.Format(time.DateTime),
		CheckOut: b.CheckOut.Format(time.DateTime),
	}
}

func (b *QuoteBuilder) BuildParams() usecase.QuoteParams {
	return usecase.QuoteParams{
		PlanID:   b.PlanID.String(),
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}

func (b *QuoteBuilder) BuildResult() (fee.Result, error) {
	return fee.NewDefaultCalculator().Calculate(b.CheckIn, b.CheckOut, b.PlanID)
}

func (b *QuoteBuilder) BuildQuote() (*usecase.Quote, error) {
	result, err := b.BuildResult()
	if err != nil {
		return nil, err
	}
	return &usecase.Quote{ID: uuid.New(), IssuedAt: b.CheckOut, Result: result}, nil
}
