package cmd

import (
	"fmt"
	"strings"
	"time"

	"studyplot/internal/cli"
	"studyplot/internal/pipeline"

	"github.com/spf13/cobra"
)

var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Study density by weekday and half-hour of day",
	RunE:  runDensity,
}

func init() {
	rootCmd.AddCommand(densityCmd)
}

func runDensity(_ *cobra.Command, _ []string) error {
	sessions, err := loadData()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("\n  No sessions found.")
		return nil
	}

	months := monthsWindow()
	matrix := pipeline.BuildDensity(sessions, months, pipeline.DefaultBins, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STUDY DENSITY BY WEEKDAY & HALF-HOUR  Last %dmo", months)))
	fmt.Println()

	max := 0.0
	peakDay, peakBin := 0, 0
	for w := range matrix.Cells {
		for b, v := range matrix.Cells[w] {
			if v > max {
				max = v
				peakDay, peakBin = w, b
			}
		}
	}

	for w := range matrix.Cells {
		fmt.Printf("  %-4s", cli.FormatDayOfWeek(w))
		for _, v := range matrix.Cells[w] {
			fmt.Print(cli.RenderDensityCell(v, max))
		}
		fmt.Println()
	}

	// Time axis, one label every two hours (4 bins x 2 chars = 8 columns).
	var axis strings.Builder
	for bin := 0; bin < matrix.Bins; bin += 4 {
		axis.WriteString(fmt.Sprintf("%-8s", cli.FormatBinTime(bin, matrix.Bins)))
	}
	fmt.Printf("      %s\n", axis.String())

	if max > 0 {
		fmt.Printf("\n  Peak: %s %s (%s min/week)\n",
			cli.DayName(peakDay),
			cli.FormatBinTime(peakBin, matrix.Bins),
			cli.FormatMinutes(max))
	} else {
		fmt.Printf("\n  No sessions in the last %d months.\n", months)
	}
	fmt.Println()

	return nil
}
