package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "retfin",
		Short: "UK retirement finances projection CLI",
		Long: `Projects savings, personal pension and state pension balances month by month
until the end of the household's planning horizon, and calculates UK income tax
and National Insurance.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")

	root.AddCommand(
		projectCmd(),
		taxYearsCmd(),
		historyCmd(),
		totalsCmd(),
		validateCmd(),
		taxCmd(),
		compareCmd(),
		serveCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "retfin %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Version
	}
	return ""
}

// newLogger returns a development logger under --debug and a no-op logger otherwise.
func newLogger(cmd *cobra.Command) (*zap.SugaredLogger, error) {
	debugMode, _ := cmd.Flags().GetBool("debug")
	if !debugMode {
		return zap.NewNop().Sugar(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger.Sugar(), nil
}

func newEngine(cmd *cobra.Command) (*calculation.CalculationEngine, *zap.SugaredLogger, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	return engine, logger, nil
}

func loadConfig(path string) (*config.File, error) {
	return config.NewInputParser().LoadFromFile(path)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
