package cli

import (
	"time"

	"manga-cafe-billing/internal/pkg/config"
	"manga-cafe-billing/internal/pkg/errs"
	"manga-cafe-billing/internal/pkg/output"
	"manga-cafe-billing/internal/usecase"

	"github.com/spf13/cobra"
)

type app struct {
	uc     usecase.FeeUseCase
	tariff config.TariffConfig

	outputFormat string
	timezone     string

	// set during PersistentPreRunE
	formatter output.Formatter
	loc       *time.Location
}

// NewRootCmd builds the feectl command tree around a fee use case.
func NewRootCmd(uc usecase.FeeUseCase, tariff config.TariffConfig) *cobra.Command {
	a := &app{uc: uc, tariff: tariff}

	root := &cobra.Command{
		Use:   "feectl",
		Short: "Quote stay fees for the manga cafe",
		Long: `feectl lists the plans on offer and quotes the fee for a stay,
including 10-minute extension blocks, the late-night surcharge and tax.

Timestamps without an offset are read in the tariff timezone: --tz if
given, otherwise the IANA zone in TARIFF_TIMEZONE. TARIFF_TIMEZONE_OFFSET
(seconds east of UTC) applies only when that zone cannot be loaded.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", output.FormatTable, "output format: table, json, yaml")
	root.PersistentFlags().StringVar(&a.timezone, "tz", "", "IANA timezone for timestamps without an offset (default from TARIFF_TIMEZONE)")

	root.AddCommand(
		a.newPlansCmd(),
		a.newQuoteCmd(),
		a.newDemoCmd(),
	)
	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	f, err := output.NewFormatter(a.outputFormat)
	if err != nil {
		return err
	}
	a.formatter = f

	if a.timezone == "" {
		a.loc = a.tariff.Location()
		return nil
	}
	loc, err := time.LoadLocation(a.timezone)
	if err != nil {
		return errs.Wrapf(err, "invalid --tz %q", a.timezone)
	}
	a.loc = loc
	return nil
}

func (a *app) isTable() bool {
	_, ok := a.formatter.(*output.TableFormatter)
	return ok
}
