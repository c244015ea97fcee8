package model

import "time"

// DailyPoint holds the total study time for one calendar day, in hours.
type DailyPoint struct {
	Date  time.Time
	Hours float64
}

// DailySeries is a contiguous run of daily totals from the earliest to the
// latest session date. Days with no sessions are present with zero hours.
type DailySeries []DailyPoint

// Hours returns the value column, aligned to the series index.
func (s DailySeries) Hours() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Hours
	}
	return out
}

// TrendSeries holds the smoothed variants of a DailySeries, aligned to the
// same index. Positions without a full trailing window behind them are NaN.
type TrendSeries struct {
	Avg7  []float64
	Avg30 []float64
}

// DensityMatrix is a weekday (Monday=0) by time-of-day bin grid of average
// study minutes per bin per week.
type DensityMatrix struct {
	Bins  int
	Cells [7][]float64
}

// Total sums every cell of the matrix.
func (m DensityMatrix) Total() float64 {
	var total float64
	for _, row := range m.Cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// WeekdayMonthTable holds average daily study hours by weekday (Monday=0)
// and calendar month. A cell is NaN when the date range contains no such
// weekday in that month (partial first or last month).
type WeekdayMonthTable struct {
	Months []string // "2006-01", ascending
	Cells  [7][]float64
}
