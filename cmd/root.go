// Package cmd implements the studyplot CLI commands.
package cmd

import (
	"fmt"
	"os"

	"studyplot/internal/cli"
	"studyplot/internal/config"
	"studyplot/internal/model"
	"studyplot/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagInput  string
	flagMonths int
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "studyplot",
	Short: "Study log analytics CLI",
	Long:  "Analyze a study-session log: daily totals, trends, and time-of-day density.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Study log file (default from config, else studytime.csv)")
	rootCmd.PersistentFlags().IntVarP(&flagMonths, "months", "n", 0, "Density lookback window in calendar months")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadData is the shared data loading path used by all commands.
func loadData() ([]model.Session, error) {
	path := logPath()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = f.Close() }()

	sessions, err := source.LoadSessions(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %s sessions from %s\n",
			cli.FormatNumber(int64(len(sessions))), path)
	}

	return sessions, nil
}

func logPath() string {
	if flagInput != "" {
		return flagInput
	}
	cfg, _ := config.Load()
	if cfg.General.LogPath != "" {
		return cfg.General.LogPath
	}
	return "studytime.csv"
}

// monthsWindow resolves the density lookback window: flag first, then config.
func monthsWindow() int {
	if flagMonths > 0 {
		return flagMonths
	}
	cfg, _ := config.Load()
	if cfg.General.MonthsBack > 0 {
		return cfg.General.MonthsBack
	}
	return 4
}
