package fee

import (
	"time"

	"manga-cafe-billing/internal/domain/plan"
	"manga-cafe-billing/internal/pkg/errs"
)

var (
	ErrInvalidPlan     = plan.ErrInvalidPlan
	ErrInvalidInterval = errs.New("invalid stay interval")
)

const periodLayout = "15:04"

// Stay is a check-in/check-out pair. Both instants are read in their own
// locations; no conversion happens here.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if !checkOut.After(checkIn) {
		return Stay{}, errs.Wrapf(ErrInvalidInterval,
			"check-out %s is not after check-in %s",
			checkOut.Format(time.DateTime), checkIn.Format(time.DateTime))
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

// ElapsedMinutes counts whole minutes, rounding up when seconds remain.
// Sub-second remainders are ignored.
func (s Stay) ElapsedMinutes() int {
	secs := int64(s.checkOut.Sub(s.checkIn) / time.Second)
	return int((secs + 59) / 60)
}

type ExtensionBlock struct {
	Start time.Time
	End   time.Time
	Night bool
	Fee   int64
}

func (b ExtensionBlock) Period() string {
	return b.Start.Format(periodLayout) + "-" + b.End.Format(periodLayout)
}

type Result struct {
	Plan     plan.Definition
	CheckIn  time.Time
	CheckOut time.Time

	ElapsedMinutes   int
	IncludedMinutes  int
	ExtensionMinutes int

	BaseFee           int64
	ExtensionFee      int64
	TotalExcludingTax int64
	Tax               int64
	TotalIncludingTax int64

	Blocks []ExtensionBlock
}

func (r Result) NightBlocks() int {
	n := 0
	for _, b := range r.Blocks {
		if b.Night {
			n++
		}
	}
	return n
}
