package cmd

import (
	"fmt"
	"math"
	"strings"

	"studyplot/internal/cli"
	"studyplot/internal/pipeline"

	"github.com/spf13/cobra"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Average study hours by weekday and month",
	RunE:  runHeatmap,
}

func init() {
	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(_ *cobra.Command, _ []string) error {
	sessions, err := loadData()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("\n  No sessions found.")
		return nil
	}

	series := pipeline.BuildDailySeries(sessions)
	table := pipeline.BuildWeekdayMonthTable(series)

	fmt.Println()
	fmt.Println(cli.RenderTitle("AVERAGE STUDY HOURS BY WEEKDAY AND MONTH"))
	fmt.Println()

	max := 0.0
	for w := 0; w < 7; w++ {
		for _, v := range table.Cells[w] {
			if !math.IsNaN(v) && v > max {
				max = v
			}
		}
	}

	// Month header. Each cell is 8 columns wide ("YYYY-MM" plus a space).
	var header strings.Builder
	header.WriteString(strings.Repeat(" ", 4))
	for _, ym := range table.Months {
		header.WriteString(fmt.Sprintf("%-8s", ym))
	}
	fmt.Printf("  %s\n", header.String())

	for w := 0; w < 7; w++ {
		fmt.Printf("  %-4s", cli.FormatDayOfWeek(w))
		for _, v := range table.Cells[w] {
			cell := fmt.Sprintf(" %5s ", cli.FormatHours(v))
			fmt.Print(cli.RenderHeatCell(cell, v, max))
			fmt.Print(" ")
		}
		fmt.Println()
	}

	// Best weekday across the whole range.
	bestDay, bestAvg := -1, 0.0
	for w := 0; w < 7; w++ {
		sum, n := 0.0, 0
		for _, v := range table.Cells[w] {
			if math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			continue
		}
		if avg := sum / float64(n); bestDay < 0 || avg > bestAvg {
			bestDay, bestAvg = w, avg
		}
	}
	if bestDay >= 0 {
		fmt.Printf("\n  Best weekday: %s (%sh/day)\n", cli.DayName(bestDay), cli.FormatHours(bestAvg))
	}
	fmt.Println()

	return nil
}
