package request

import (
	"time"

	"manga-cafe-billing/internal/pkg/timestamp"
	"manga-cafe-billing/internal/usecase"
)

// Timestamps accept RFC3339 or "YYYY-MM-DD HH:MM:SS" in the tariff location.
type QuoteRequest struct {
	PlanID   string `json:"planId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

func (r QuoteRequest) ToParams(loc *time.Location) (usecase.QuoteParams, error) {
	checkIn, err := timestamp.Parse(r.CheckIn, loc)
	if err != nil {
		return usecase.QuoteParams{}, err
	}
	checkOut, err := timestamp.Parse(r.CheckOut, loc)
	if err != nil {
		return usecase.QuoteParams{}, err
	}
	return usecase.QuoteParams{
		PlanID:   r.PlanID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}
