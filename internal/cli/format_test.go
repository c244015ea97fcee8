package cli

import (
	"math"
	"testing"
)

func TestFormatHours(t *testing.T) {
	if got := FormatHours(2.5); got != "2.5" {
		t.Errorf("FormatHours(2.5) = %q", got)
	}
	if got := FormatHours(math.NaN()); got != "-" {
		t.Errorf("FormatHours(NaN) = %q, want dash", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{3725, "1h 2m"},
		{125, "2m"},
		{45, "45s"},
		{0, "0s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.secs); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{999, "999"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatBinTime(t *testing.T) {
	tests := []struct {
		bin  int
		want string
	}{
		{0, "00:00"},
		{1, "00:30"},
		{20, "10:00"},
		{47, "23:30"},
	}
	for _, tt := range tests {
		if got := FormatBinTime(tt.bin, 48); got != tt.want {
			t.Errorf("FormatBinTime(%d, 48) = %q, want %q", tt.bin, got, tt.want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(0); got != "Mon" {
		t.Errorf("FormatDayOfWeek(0) = %q, want Mon", got)
	}
	if got := FormatDayOfWeek(6); got != "Sun" {
		t.Errorf("FormatDayOfWeek(6) = %q, want Sun", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Errorf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}
