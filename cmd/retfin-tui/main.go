package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/tui"
)

func main() {
	logFile := flag.String("log", "", "Write debug logs to this file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: retfin-tui [--log file] <config-file>")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	configPath := flag.Arg(0)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Error: Config file not found: %s\n", configPath)
		os.Exit(1)
	}

	engine := calculation.NewCalculationEngine()
	// The terminal belongs to the UI, so logs only go to a file.
	if *logFile != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*logFile}
		cfg.ErrorOutputPaths = []string{*logFile}
		logger, err := cfg.Build()
		if err != nil {
			fmt.Printf("Error: failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync() //nolint:errcheck
		engine.SetLogger(logger.Sugar())
	}

	p := tea.NewProgram(
		tui.NewModel(configPath, engine),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
