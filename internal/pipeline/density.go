package pipeline

import (
	"time"

	"studyplot/internal/model"
)

// DefaultBins is the number of half-hour bins in one day.
const DefaultBins = 48

// BuildDensity accumulates study minutes into a weekday by time-of-day bin
// matrix, restricted to sessions starting within monthsBack calendar months
// of now, then normalizes to average minutes per bin per week.
//
// If no session survives the window filter the matrix is all zero and the
// weeks normalization is skipped.
func BuildDensity(sessions []model.Session, monthsBack, binsPerDay int, now time.Time) model.DensityMatrix {
	matrix := model.DensityMatrix{Bins: binsPerDay}
	for w := range matrix.Cells {
		matrix.Cells[w] = make([]float64, binsPerDay)
	}

	cutoff := now.AddDate(0, -monthsBack, 0)
	var recent []model.Session
	for _, s := range sessions {
		if !s.Start.Before(cutoff) {
			recent = append(recent, s)
		}
	}
	if len(recent) == 0 {
		return matrix
	}

	binWidth := (24 * 60) / binsPerDay
	var minStart, maxStart time.Time
	for _, s := range recent {
		if minStart.IsZero() || s.Start.Before(minStart) {
			minStart = s.Start
		}
		if s.Start.After(maxStart) {
			maxStart = s.Start
		}
		accumulate(&matrix, s, binWidth)
	}

	// Minute counts -> hours -> per-week rate -> minutes. Weeks spanned is
	// whole days between the earliest and latest start, divided by 7.
	weeks := float64(int(maxStart.Sub(minStart).Hours()/24)) / 7
	for w := range matrix.Cells {
		for b := range matrix.Cells[w] {
			v := matrix.Cells[w][b] / 60
			if weeks > 0 {
				v /= weeks
			}
			matrix.Cells[w][b] = v * 60
		}
	}

	return matrix
}

// accumulate walks [start, end] one minute at a time, inclusive of both
// endpoints. The walk never crosses a calendar-day boundary in one segment:
// it splits at 23:59:59 of the current day and resumes one second later, so
// 00:00:00 of the next day is visited by the resumed cursor.
func accumulate(m *model.DensityMatrix, s model.Session, binWidth int) {
	cursor := s.Start
	for {
		dayEnd := time.Date(cursor.Year(), cursor.Month(), cursor.Day(), 23, 59, 59, 0, cursor.Location())
		segEnd := s.End
		if dayEnd.Before(segEnd) {
			segEnd = dayEnd
		}

		for t := cursor; !t.After(segEnd); t = t.Add(time.Minute) {
			w := MondayWeekday(t.Weekday())
			bin := (t.Hour()*60 + t.Minute()) / binWidth
			m.Cells[w][bin]++
		}

		cursor = segEnd.Add(time.Second)
		if cursor.After(s.End) {
			return
		}
	}
}
