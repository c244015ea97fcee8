package source

import (
	"errors"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  time.Duration
	}{
		{"full", "1h 23m 40s", 1*time.Hour + 23*time.Minute + 40*time.Second},
		{"compact", "2h30m15s", 2*time.Hour + 30*time.Minute + 15*time.Second},
		{"minutes only", "45m", 45 * time.Minute},
		{"seconds only", "30s", 30 * time.Second},
		{"hours only", "1h", time.Hour},
		{"zero", "0s", 0},
		{"no markers", "", 0},
		{"junk without markers", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.token)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseDuration_Seconds(t *testing.T) {
	// The spec'd reference values in whole seconds.
	tests := []struct {
		token string
		secs  float64
	}{
		{"1h 23m 40s", 5020},
		{"45m", 2700},
		{"30s", 30},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.token)
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", tt.token, err)
		}
		if got.Seconds() != tt.secs {
			t.Errorf("ParseDuration(%q) = %vs, want %vs", tt.token, got.Seconds(), tt.secs)
		}
	}
}

func TestParseDuration_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"bare marker", "h"},
		{"no digit before marker", "xm"},
		{"bad second unit", "1h xm"},
		{"negative", "-5m"},
		{"fractional", "1.5h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDuration(tt.token)
			var mde *MalformedDurationError
			if !errors.As(err, &mde) {
				t.Fatalf("ParseDuration(%q) error = %v, want *MalformedDurationError", tt.token, err)
			}
			if mde.Token != tt.token {
				t.Errorf("error token = %q, want %q", mde.Token, tt.token)
			}
		})
	}
}

// FuzzParseDuration checks the scanner never panics and only ever fails
// with a MalformedDurationError.
func FuzzParseDuration(f *testing.F) {
	f.Add("1h 23m 40s")
	f.Add("45m")
	f.Add("30s")
	f.Add("")
	f.Add("h")
	f.Add("1hms")
	f.Add("s1h")

	f.Fuzz(func(t *testing.T, token string) {
		_, err := ParseDuration(token)
		if err != nil {
			var mde *MalformedDurationError
			if !errors.As(err, &mde) {
				t.Errorf("ParseDuration(%q) error = %v, want *MalformedDurationError", token, err)
			}
		}
	})
}
