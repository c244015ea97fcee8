// Package model defines domain types for studyplot sessions and series.
package model

import "time"

// Session is one recorded study interval from the log.
type Session struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Date returns the calendar day the session is attributed to, which is the
// day the session started (midnight, same location).
func (s Session) Date() time.Time {
	return time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(), 0, 0, 0, 0, s.Start.Location())
}
