// Package pipeline turns raw study sessions into the series and matrices
// the rendering layer consumes.
package pipeline

import (
	"math"
	"time"

	"studyplot/internal/model"
)

// Rolling-mean windows, in days.
const (
	ShortWindow = 7
	LongWindow  = 30
)

// BuildDailySeries groups sessions by start date, summing durations, and
// fills every day between the earliest and latest date so charts show gaps
// as zeros. Values are fractional hours.
func BuildDailySeries(sessions []model.Session) model.DailySeries {
	if len(sessions) == 0 {
		return nil
	}

	totals := make(map[time.Time]time.Duration)
	var minDay, maxDay time.Time
	for _, s := range sessions {
		day := s.Date()
		totals[day] += s.Duration
		if minDay.IsZero() || day.Before(minDay) {
			minDay = day
		}
		if day.After(maxDay) {
			maxDay = day
		}
	}

	var series model.DailySeries
	for day := minDay; !day.After(maxDay); day = day.AddDate(0, 0, 1) {
		series = append(series, model.DailyPoint{
			Date:  day,
			Hours: totals[day].Seconds() / 3600,
		})
	}

	return series
}

// BuildTrend computes the 7-day and 30-day trailing means over a series.
func BuildTrend(series model.DailySeries) model.TrendSeries {
	hours := series.Hours()
	return model.TrendSeries{
		Avg7:  RollingMean(hours, ShortWindow),
		Avg30: RollingMean(hours, LongWindow),
	}
}

// RollingMean computes a trailing arithmetic mean over values. Positions
// with fewer than window values behind them are NaN rather than a partial
// average.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(window)
	}
	return out
}
