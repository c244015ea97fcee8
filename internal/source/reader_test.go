package source

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadSessions(t *testing.T) {
	log := strings.Join([]string{
		"1,24-01-15 09:30:00,24-01-15 10:15:00,45m",
		"2,24-01-15 21:00:00,24-01-16 00:30:00,3h 30m",
	}, "\n")

	sessions, err := LoadSessions(strings.NewReader(log))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	wantStart := time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)
	if !sessions[0].Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", sessions[0].Start, wantStart)
	}
	if sessions[0].Duration != 45*time.Minute {
		t.Errorf("Duration = %v, want 45m", sessions[0].Duration)
	}
	if sessions[1].End.Day() != 16 {
		t.Errorf("End day = %d, want 16 (midnight crossing preserved)", sessions[1].End.Day())
	}
}

func TestLoadSessions_SkipsMalformedRows(t *testing.T) {
	log := strings.Join([]string{
		"",                                    // blank
		"just a note",                         // 1 field
		"1,24-01-15 09:00:00,24-01-15 09:30:00", // 3 fields
		"2,,24-01-15 10:00:00,30m",            // empty start
		"3,24-01-15 10:00:00,,30m",            // empty end
		"4,24-01-15 10:00:00,24-01-15 10:30:00,30m,extra", // 5 fields
		"5,24-01-15 11:00:00,24-01-15 11:30:00,30m",       // good
	}, "\n")

	sessions, err := LoadSessions(strings.NewReader(log))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1 (noise rows skipped silently)", len(sessions))
	}
}

func TestLoadSessions_BadTimestampIsFatal(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantField string
	}{
		{"bad start", "1,2024-01-15 09:00:00,24-01-15 09:30:00,30m", "start"},
		{"bad end", "1,24-01-15 09:00:00,not a time,30m", "end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSessions(strings.NewReader(tt.line))
			var mte *MalformedTimestampError
			if !errors.As(err, &mte) {
				t.Fatalf("error = %v, want *MalformedTimestampError", err)
			}
			if mte.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", mte.Field, tt.wantField)
			}
		})
	}
}

func TestLoadSessions_BadDurationIsFatal(t *testing.T) {
	line := "1,24-01-15 09:00:00,24-01-15 09:30:00,xm"
	_, err := LoadSessions(strings.NewReader(line))
	var mde *MalformedDurationError
	if !errors.As(err, &mde) {
		t.Fatalf("error = %v, want *MalformedDurationError", err)
	}
}

func TestLoadSessions_Empty(t *testing.T) {
	sessions, err := LoadSessions(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error on empty input: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("got %d sessions, want 0", len(sessions))
	}
}
