package fee

import (
	"time"

	"manga-cafe-billing/internal/domain/plan"
	"manga-cafe-billing/internal/pkg/errs"
)

// Calculator holds no mutable state and is safe for concurrent use.
type Calculator struct {
	tariff Tariff
}

func NewCalculator(tariff Tariff) *Calculator {
	return &Calculator{tariff: tariff}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultTariff())
}

func (c *Calculator) Tariff() Tariff {
	return c.tariff
}

func (c *Calculator) Calculate(checkIn, checkOut time.Time, id plan.ID) (Result, error) {
	def, ok := plan.Lookup(id)
	if !ok {
		return Result{}, errs.Wrapf(ErrInvalidPlan, "unknown plan %q", string(id))
	}
	stay, err := NewStay(checkIn, checkOut)
	if err != nil {
		return Result{}, err
	}

	elapsed := stay.ElapsedMinutes()
	included := def.IncludedMinutes()
	extension := max(0, elapsed-included)

	blocks := c.extensionBlocks(stay, included, extension)
	var extensionFee int64
	for _, b := range blocks {
		extensionFee += b.Fee
	}

	subtotal := def.BasePrice + extensionFee
	total := c.tariff.WithTax(subtotal)

	return Result{
		Plan:              def,
		CheckIn:           stay.CheckIn(),
		CheckOut:          stay.CheckOut(),
		ElapsedMinutes:    elapsed,
		IncludedMinutes:   included,
		ExtensionMinutes:  extension,
		BaseFee:           def.BasePrice,
		ExtensionFee:      extensionFee,
		TotalExcludingTax: subtotal,
		Tax:               total - subtotal,
		TotalIncludingTax: total,
		Blocks:            blocks,
	}, nil
}

func (c *Calculator) extensionBlocks(stay Stay, includedMinutes, extensionMinutes int) []ExtensionBlock {
	if extensionMinutes <= 0 {
		return []ExtensionBlock{}
	}

	size := c.tariff.blockMinutes()
	count := (extensionMinutes + size - 1) / size
	from := stay.CheckIn().Add(time.Duration(includedMinutes) * time.Minute)

	blocks := make([]ExtensionBlock, 0, count)
	for i := range count {
		start := from.Add(time.Duration(i) * c.tariff.BlockLength)
		end := start.Add(c.tariff.BlockLength)
		if end.After(stay.CheckOut()) {
			end = stay.CheckOut()
		}

		night := c.tariff.Night.Touches(start, end)
		blocks = append(blocks, ExtensionBlock{
			Start: start,
			End:   end,
			Night: night,
			Fee:   c.tariff.BlockFee(night),
		})
	}
	return blocks
}
