package source

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses a compact duration token like "1h 23m 40s".
// The unit markers h, m, s are scanned in that order; each marker consumes
// the token prefix up through itself, and an absent marker contributes zero
// for that unit. Spaces around the numbers are tolerated.
func ParseDuration(token string) (time.Duration, error) {
	rest := token
	var hours, minutes, seconds int

	if before, after, ok := strings.Cut(rest, "h"); ok {
		n, ok := parseUnit(before)
		if !ok {
			return 0, &MalformedDurationError{Token: token}
		}
		hours = n
		rest = after
	}
	if before, after, ok := strings.Cut(rest, "m"); ok {
		n, ok := parseUnit(before)
		if !ok {
			return 0, &MalformedDurationError{Token: token}
		}
		minutes = n
		rest = after
	}
	if before, _, ok := strings.Cut(rest, "s"); ok {
		n, ok := parseUnit(before)
		if !ok {
			return 0, &MalformedDurationError{Token: token}
		}
		seconds = n
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second, nil
}

// parseUnit converts the text before a unit marker to an unsigned integer.
func parseUnit(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
