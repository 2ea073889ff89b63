package cli

import (
	"fmt"
	"time"

	resdto "manga-cafe-billing/internal/handler/dto/response"
	"manga-cafe-billing/internal/usecase"

	"github.com/spf13/cobra"
)

type scenario struct {
	title    string
	planID   string
	checkIn  string
	checkOut string
}

var demoScenarios = []scenario{
	{title: "3-hour pack, no extension", planID: "pack_3hour", checkIn: "2025-06-04 14:00:00", checkOut: "2025-06-04 17:00:00"},
	{title: "3-hour pack, 90 minutes over", planID: "pack_3hour", checkIn: "2025-06-04 14:00:00", checkOut: "2025-06-04 18:30:00"},
	{title: "8-hour pack into the night", planID: "pack_8hour", checkIn: "2025-06-04 20:00:00", checkOut: "2025-06-05 06:30:00"},
	{title: "Regular, 1 minute over", planID: "regular_1hour", checkIn: "2025-06-04 15:00:00", checkOut: "2025-06-04 16:01:00"},
	{title: "Unknown plan", planID: "invalid_plan", checkIn: "2025-06-04 15:00:00", checkOut: "2025-06-04 16:00:00"},
}

type demoResult struct {
	Scenario string                `json:"scenario" yaml:"scenario"`
	Quote    *resdto.QuoteResponse `json:"quote,omitempty" yaml:"quote,omitempty"`
	Error    string                `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a set of sample stays through the calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := make([]demoResult, 0, len(demoScenarios))
			for _, s := range demoScenarios {
				res, err := a.runScenario(cmd, s)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			w := cmd.OutOrStdout()
			if !a.isTable() {
				out, err := a.formatter.Format(results)
				if err != nil {
					return err
				}
				fmt.Fprint(w, out)
				return nil
			}

			styles := newStyles(w)
			for i, res := range results {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, styles.subheading.Render(fmt.Sprintf("[%d] %s", i+1, res.Scenario)))
				if res.Quote == nil {
					fmt.Fprintln(w, styles.failure.Render("error: "+res.Error))
					continue
				}
				if err := a.renderQuote(w, res.Quote); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// runScenario only fails on unexpected errors; rejected input becomes part of the result.
func (a *app) runScenario(cmd *cobra.Command, s scenario) (demoResult, error) {
	in, err := time.ParseInLocation(time.DateTime, s.checkIn, a.loc)
	if err != nil {
		return demoResult{}, err
	}
	out, err := time.ParseInLocation(time.DateTime, s.checkOut, a.loc)
	if err != nil {
		return demoResult{}, err
	}

	q, err := a.uc.Quote(cmd.Context(), usecase.QuoteParams{PlanID: s.planID, CheckIn: in, CheckOut: out})
	switch {
	case err == nil:
	case usecase.IsRejected(err):
		return demoResult{Scenario: s.title, Error: err.Error()}, nil
	default:
		return demoResult{}, err
	}

	res, err := resdto.FromQuote(q)
	if err != nil {
		return demoResult{}, err
	}
	return demoResult{Scenario: s.title, Quote: res}, nil
}
