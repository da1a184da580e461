package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pjaos/retirement-finances-sub000/internal/compare"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [config-file]",
		Short: "Compare scenarios from the same configuration",
		Long: `Compare a base scenario against alternative scenarios from the same file.

Examples:
  retfin compare config.yaml --base Budget
  retfin compare config.yaml --base Budget --with "Planned drawdown" --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			engine, _, err := newEngine(cmd)
			if err != nil {
				return err
			}

			base, _ := cmd.Flags().GetString("base")
			with, _ := cmd.Flags().GetStringSlice("with")
			format, _ := cmd.Flags().GetString("format")

			compSet, err := compare.NewCompareEngine(engine).CompareScenarios(cmd.Context(), file, base, with)
			if err != nil {
				return err
			}
			compSet.ConfigPath = args[0]

			var out string
			switch strings.ToLower(format) {
			case "", "table":
				out = (&compare.TableFormatter{}).Format(compSet)
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			default:
				return fmt.Errorf("unsupported format %q (use table, csv or json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringP("base", "b", "", "Base scenario name (default: first scenario)")
	cmd.Flags().StringSlice("with", nil, "Alternative scenario names (default: every other scenario)")
	cmd.Flags().StringP("format", "f", "table", "Output format: table, csv or json")
	return cmd
}
