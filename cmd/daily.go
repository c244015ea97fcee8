package cmd

import (
	"fmt"

	"studyplot/internal/cli"
	"studyplot/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagLast int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily study hours with 7d/30d trailing means",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVar(&flagLast, "last", 0, "Show only the most recent N days")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
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

	first := 0
	if flagLast > 0 && len(series) > flagLast {
		first = len(series) - flagLast
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAILY STUDY TIME"))
	fmt.Println()

	rows := make([][]string, 0, len(series)-first)
	for i := first; i < len(series); i++ {
		p := series[i]
		rows = append(rows, []string{
			p.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(pipeline.MondayWeekday(p.Date.Weekday())),
			cli.FormatHours(p.Hours),
			cli.FormatHours(trend.Avg7[i]),
			cli.FormatHours(trend.Avg30[i]),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Hours", "7d avg", "30d avg"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
