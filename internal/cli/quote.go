package cli

import (
	"fmt"
	"io"

	resdto "manga-cafe-billing/internal/handler/dto/response"
	"manga-cafe-billing/internal/pkg/timestamp"
	"manga-cafe-billing/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func (a *app) newQuoteCmd() *cobra.Command {
	var planID, checkIn, checkOut string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote the fee for one stay",
		Example: `  feectl quote --plan pack_3hour --in "2025-06-04 14:00:00" --out "2025-06-04 18:30:00"
  feectl quote --plan pack_8hour --in 2025-06-04T20:00:00+09:00 --out 2025-06-05T06:30:00+09:00 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := timestamp.Parse(checkIn, a.loc)
			if err != nil {
				return fmt.Errorf("invalid --in: %w", err)
			}
			out, err := timestamp.Parse(checkOut, a.loc)
			if err != nil {
				return fmt.Errorf("invalid --out: %w", err)
			}

			q, err := a.uc.Quote(cmd.Context(), usecase.QuoteParams{
				PlanID:   planID,
				CheckIn:  in,
				CheckOut: out,
			})
			if err != nil {
				return err
			}
			res, err := resdto.FromQuote(q)
			if err != nil {
				return err
			}
			return a.renderQuote(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "plan id, as listed by feectl plans")
	cmd.Flags().StringVar(&checkIn, "in", "", "check-in timestamp")
	cmd.Flags().StringVar(&checkOut, "out", "", "check-out timestamp")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) renderQuote(w io.Writer, res *resdto.QuoteResponse) error {
	if !a.isTable() {
		out, err := a.formatter.Format(res)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	}

	styles := newStyles(w)

	summary, err := a.formatter.Format(res)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, styles.heading.Render(res.Plan.DisplayName))
	fmt.Fprint(w, summary)

	if len(res.Blocks) == 0 {
		return nil
	}
	blocks, err := a.formatter.Format(res.Blocks)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.subheading.Render("Extension blocks"))
	fmt.Fprint(w, blocks)
	return nil
}

type styles struct {
	heading    lipgloss.Style
	subheading lipgloss.Style
	failure    lipgloss.Style
}

// Styles bind to the writer's renderer so piped output stays plain.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")).Padding(0, 1),
		subheading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("57")),
		failure:    r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
