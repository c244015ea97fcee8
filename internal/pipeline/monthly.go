package pipeline

import (
	"math"
	"sort"
	"time"

	"studyplot/internal/model"
)

// BuildWeekdayMonthTable averages the gap-filled daily series by weekday
// and calendar month. Because the series has every day present, zero days
// count toward the mean.
func BuildWeekdayMonthTable(series model.DailySeries) model.WeekdayMonthTable {
	if len(series) == 0 {
		return model.WeekdayMonthTable{}
	}

	type cell struct {
		sum  float64
		days int
	}
	months := make(map[string]*[7]cell)
	for _, p := range series {
		ym := p.Date.Format("2006-01")
		c, ok := months[ym]
		if !ok {
			c = &[7]cell{}
			months[ym] = c
		}
		w := MondayWeekday(p.Date.Weekday())
		c[w].sum += p.Hours
		c[w].days++
	}

	table := model.WeekdayMonthTable{Months: make([]string, 0, len(months))}
	for ym := range months {
		table.Months = append(table.Months, ym)
	}
	sort.Strings(table.Months)

	for w := 0; w < 7; w++ {
		table.Cells[w] = make([]float64, len(table.Months))
		for m, ym := range table.Months {
			c := months[ym][w]
			if c.days == 0 {
				table.Cells[w][m] = math.NaN()
				continue
			}
			table.Cells[w][m] = c.sum / float64(c.days)
		}
	}

	return table
}

// MondayWeekday remaps Go's Sunday-first weekday to Monday=0..Sunday=6.
func MondayWeekday(w time.Weekday) int {
	return (int(w) + 6) % 7
}
