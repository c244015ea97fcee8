package cmd

import (
	"fmt"
	"math"

	"studyplot/internal/cli"
	"studyplot/internal/pipeline"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Sparkline view of daily hours and smoothed trends",
	RunE:  runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
	sessions, err := loadData()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("\n  No sessions found.")
		return nil
	}

	series := pipeline.BuildDailySeries(sessions)
	trend := pipeline.BuildTrend(series)
	hours := series.Hours()

	peak := 0.0
	for _, h := range hours {
		if h > peak {
			peak = h
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STUDY TREND  %s to %s",
		series[0].Date.Format("2006-01-02"),
		series[len(series)-1].Date.Format("2006-01-02"))))
	fmt.Println()

	fmt.Printf("  Daily   │ %s\n", cli.RenderSparkline(hours))
	fmt.Printf("  7d avg  │ %s\n", cli.RenderSparkline(trend.Avg7))
	fmt.Printf("  30d avg │ %s\n", cli.RenderSparkline(trend.Avg30))
	fmt.Println()
	fmt.Printf("  Peak day: %sh", cli.FormatHours(peak))
	if last := lastValue(trend.Avg7); !math.IsNaN(last) {
		fmt.Printf("   Current 7d avg: %sh/day", cli.FormatHours(last))
	}
	fmt.Println()
	fmt.Println()

	return nil
}

func lastValue(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return values[len(values)-1]
}
