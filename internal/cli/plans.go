package cli

import (
	"fmt"

	resdto "manga-cafe-billing/internal/handler/dto/response"

	"github.com/spf13/cobra"
)

func (a *app) newPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the plans on offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plans, err := resdto.FromPlans(a.uc.ListPlans(cmd.Context()))
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}
			out, err := a.formatter.Format(plans)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
