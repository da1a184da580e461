package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/pjaos/retirement-finances-sub000/internal/output"
)

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [config-file]",
		Short: "Project a scenario month by month",
		Long: `Project one named scenario from the configuration file.

Examples:
  retfin project config.yaml
  retfin project config.yaml --scenario "Planned drawdown" --format csv
  retfin project config.yaml --format pdf   # always written to a file
  retfin project config.yaml --overlay --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format %q (use one of %s)", format, strings.Join(output.FormatNames(), ", "))
			}

			projection, err := runProjection(cmd, args[0])
			if err != nil {
				return err
			}

			save, _ := cmd.Flags().GetBool("save")
			if save || f.Name() == "pdf" {
				filename, err := output.WriteFormatted(f, projection, extension(format))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := f.Format(projection)
			if err != nil {
				return fmt.Errorf("%s formatter: %w", f.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("scenario", "s", "", "Scenario name (default: first scenario)")
	cmd.Flags().StringP("format", "f", "console", "Output format: "+strings.Join(output.FormatNames(), ", "))
	cmd.Flags().Bool("overlay", false, "Attach the recorded balance histories to the projection")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func runProjection(cmd *cobra.Command, path string) (*domain.Projection, error) {
	file, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	engine, _, err := newEngine(cmd)
	if err != nil {
		return nil, err
	}
	if overlay, err := cmd.Flags().GetBool("overlay"); err == nil {
		engine.OverlayReality = overlay
	}
	name, _ := cmd.Flags().GetString("scenario")
	in, err := file.ToInputs(name)
	if err != nil {
		return nil, err
	}
	return engine.RunScenario(in)
}

func extension(format string) string {
	switch strings.ToLower(format) {
	case "", "console", "table":
		return "txt"
	case "json-compact":
		return "json"
	default:
		return strings.ToLower(format)
	}
}

func taxYearsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxyears [config-file]",
		Short: "Print the per tax year summaries of a schedule scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projection, err := runProjection(cmd, args[0])
			if err != nil {
				return err
			}
			if len(projection.TaxYears) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Scenario %q has no tax year summaries (mode %s)\n", projection.Scenario, projection.Mode)
				return nil
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return writeJSON(cmd, projection.TaxYears)
			}
			_, err = cmd.OutOrStdout().Write(output.TaxYearsTable(projection.TaxYears))
			return err
		},
	}
	cmd.Flags().StringP("scenario", "s", "", "Scenario name (default: first scenario)")
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [config-file]",
		Short: "Print the merged recorded savings, pension and total histories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			holdings, err := file.Holdings()
			if err != nil {
				return err
			}
			reality := calculation.Reality(holdings)
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return writeJSON(cmd, reality)
			}
			_, err = cmd.OutOrStdout().Write(output.RealityTable(reality))
			return err
		},
	}
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func totalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals [config-file]",
		Short: "Print the latest balance of every active account and pension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			report, err := file.Totals()
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ACCOUNTS")
			for _, v := range report.Accounts {
				fmt.Fprintf(out, "  %-30s %12s  (%s)\n", v.Name, output.FormatCurrency(v.Value), v.Date)
			}
			fmt.Fprintln(out, "PENSIONS")
			for _, v := range report.Pensions {
				fmt.Fprintf(out, "  %-30s %12s  (%s)\n", v.Name, output.FormatCurrency(v.Value), v.Date)
			}
			fmt.Fprintf(out, "\nSavings total: %s\n", output.FormatCurrency(report.Savings))
			fmt.Fprintf(out, "Pension total: %s\n", output.FormatCurrency(report.Pension))
			fmt.Fprintf(out, "Total:         %s\n", output.FormatCurrency(report.Total))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			// Converting every scenario also checks the rate schedules and rows.
			for _, name := range file.ScenarioNames() {
				if _, err := file.ToInputs(name); err != nil {
					return fmt.Errorf("scenario %q: %w", name, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid (%d scenarios)\n", len(file.Scenarios))
			return nil
		},
	}
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
