package cmd

import (
	"fmt"

	"studyplot/internal/cli"
	"studyplot/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Overall study totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	sessions, err := loadData()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("\n  No sessions found.")
		return nil
	}

	series := pipeline.BuildDailySeries(sessions)

	var totalSecs float64
	activeDays := 0
	bestIdx := 0
	streak, longestStreak := 0, 0
	for i, p := range series {
		totalSecs += p.Hours * 3600
		if p.Hours > 0 {
			activeDays++
			streak++
			if streak > longestStreak {
				longestStreak = streak
			}
		} else {
			streak = 0
		}
		if p.Hours > series[bestIdx].Hours {
			bestIdx = i
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("STUDY SUMMARY"))
	fmt.Println()

	rows := [][]string{
		{"Sessions", cli.FormatNumber(int64(len(sessions)))},
		{"Total Time", cli.FormatDuration(int64(totalSecs))},
		{"---"},
		{"First Day", series[0].Date.Format("2006-01-02")},
		{"Last Day", series[len(series)-1].Date.Format("2006-01-02")},
		{"Days Tracked", cli.FormatNumber(int64(len(series)))},
		{"Active Days", cli.FormatNumber(int64(activeDays))},
		{"Longest Streak", fmt.Sprintf("%dd", longestStreak)},
		{"---"},
		{"Best Day", fmt.Sprintf("%s (%sh)", series[bestIdx].Date.Format("2006-01-02"), cli.FormatHours(series[bestIdx].Hours))},
	}
	if activeDays > 0 {
		rows = append(rows, []string{
			"Hours/active day",
			cli.FormatHours(totalSecs / 3600 / float64(activeDays)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	fmt.Println()

	return nil
}
