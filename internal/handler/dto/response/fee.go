package response

import (
	"time"

	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/domain/plan"
	"manga-cafe-billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PlanResponse struct {
	ID            string `json:"id" yaml:"id" table:"ID"`
	DisplayName   string `json:"name" yaml:"name" table:"NAME"`
	BasePrice     int64  `json:"priceExcludingTax" yaml:"priceExcludingTax" table:"PRICE"`
	IncludedHours int    `json:"includedHours" yaml:"includedHours" table:"HOURS"`
}

type BlockResponse struct {
	Start  string `json:"start" yaml:"start" table:"-"`
	End    string `json:"end" yaml:"end" table:"-"`
	Period string `json:"period" yaml:"period" table:"PERIOD"`
	Night  bool   `json:"night" yaml:"night" table:"NIGHT"`
	Fee    int64  `json:"fee" yaml:"fee" table:"FEE"`
}

type QuoteResponse struct {
	ID       uuid.UUID    `json:"id" yaml:"id" copier:"-" table:"Quote"`
	IssuedAt string       `json:"issuedAt" yaml:"issuedAt" copier:"-" table:"Issued at"`
	Plan     PlanResponse `json:"plan" yaml:"plan" copier:"-" table:"-"`
	CheckIn  string       `json:"checkIn" yaml:"checkIn" copier:"-" table:"Check-in"`
	CheckOut string       `json:"checkOut" yaml:"checkOut" copier:"-" table:"Check-out"`

	ElapsedMinutes   int `json:"elapsedMinutes" yaml:"elapsedMinutes" table:"Elapsed (min)"`
	IncludedMinutes  int `json:"includedMinutes" yaml:"includedMinutes" table:"Included (min)"`
	ExtensionMinutes int `json:"extensionMinutes" yaml:"extensionMinutes" table:"Extension (min)"`

	BaseFee           int64 `json:"baseFee" yaml:"baseFee" table:"Base fee"`
	ExtensionFee      int64 `json:"extensionFee" yaml:"extensionFee" table:"Extension fee"`
	TotalExcludingTax int64 `json:"totalExcludingTax" yaml:"totalExcludingTax" table:"Subtotal"`
	Tax               int64 `json:"tax" yaml:"tax" table:"Tax"`
	TotalIncludingTax int64 `json:"totalIncludingTax" yaml:"totalIncludingTax" table:"Total"`

	Blocks []BlockResponse `json:"blocks" yaml:"blocks" copier:"-" table:"-"`
}

func FromPlan(def plan.Definition) (PlanResponse, error) {
	var res PlanResponse
	if err := copier.Copy(&res, &def); err != nil {
		return PlanResponse{}, err
	}
	return res, nil
}

func FromPlans(defs []plan.Definition) ([]PlanResponse, error) {
	res := make([]PlanResponse, 0, len(defs))
	if err := copier.Copy(&res, &defs); err != nil {
		return nil, err
	}
	return res, nil
}

func FromQuote(q *usecase.Quote) (*QuoteResponse, error) {
	res := &QuoteResponse{}
	if err := copier.Copy(res, &q.Result); err != nil {
		return nil, err
	}

	p, err := FromPlan(q.Plan)
	if err != nil {
		return nil, err
	}
	res.ID = q.ID
	res.IssuedAt = q.IssuedAt.Format(time.RFC3339)
	res.Plan = p
	res.CheckIn = q.CheckIn.Format(time.DateTime)
	res.CheckOut = q.CheckOut.Format(time.DateTime)
	res.Blocks = FromBlocks(q.Blocks)
	return res, nil
}

func FromBlocks(blocks []fee.ExtensionBlock) []BlockResponse {
	res := make([]BlockResponse, len(blocks))
	for i, b := range blocks {
		res[i] = BlockResponse{
			Start:  b.Start.Format(time.DateTime),
			End:    b.End.Format(time.DateTime),
			Period: b.Period(),
			Night:  b.Night,
			Fee:    b.Fee,
		}
	}
	return res
}
