package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/pjaos/retirement-finances-sub000/internal/output"
)

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax [gross]",
		Short: "Calculate UK income tax, National Insurance and net pay",
		Long: `Calculate income tax, National Insurance and net pay for a gross amount.

Examples:
  retfin tax 30000
  retfin tax 3750 --period monthly
  retfin tax 2500 --period monthly --state-pension`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid gross amount %q: %w", args[0], err)
			}
			if gross.IsNegative() {
				return fmt.Errorf("gross amount must not be negative")
			}
			periodText, _ := cmd.Flags().GetString("period")
			period, err := domain.ParseTaxPeriod(periodText)
			if err != nil {
				return err
			}
			statePension, _ := cmd.Flags().GetBool("state-pension")

			result := calculation.NewCalculationEngine().CalcNetPay(gross, statePension, period)

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return writeJSON(cmd, result)
			}
			_, err = cmd.OutOrStdout().Write(output.TaxResultText(result))
			return err
		},
	}
	cmd.Flags().StringP("period", "p", "annual", "Pay period: annual, monthly, fortnightly or weekly")
	cmd.Flags().Bool("state-pension", false, "The person receives the state pension (no National Insurance)")
	cmd.Flags().Bool("json", false, "Print JSON instead of text")
	return cmd
}
