package fee

import "time"

type Tariff struct {
	BlockLength           time.Duration
	BlockRate             int64
	NightSurchargePercent int64
	TaxPercent            int64
	Night                 NightWindow
}

func DefaultTariff() Tariff {
	return Tariff{
		BlockLength:           10 * time.Minute,
		BlockRate:             100,
		NightSurchargePercent: 15,
		TaxPercent:            10,
		Night:                 NightWindow{StartHour: 22, EndHour: 5},
	}
}

// BlockFee rounds the surcharged rate half up to the nearest minor unit.
func (t Tariff) BlockFee(night bool) int64 {
	if !night {
		return t.BlockRate
	}
	return (t.BlockRate*(100+t.NightSurchargePercent) + 50) / 100
}

// WithTax truncates. Do not share rounding with BlockFee.
func (t Tariff) WithTax(amount int64) int64 {
	return amount * (100 + t.TaxPercent) / 100
}

func (t Tariff) blockMinutes() int {
	return int(t.BlockLength / time.Minute)
}
