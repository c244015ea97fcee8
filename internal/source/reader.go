// Package source parses study-session CSV logs.
package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"studyplot/internal/model"
)

// TimeLayout is the two-digit-year timestamp format used in the log.
// time.Parse maps the two-digit year into the 2000s.
const TimeLayout = "06-01-02 15:04:05"

// LoadSessions reads a study log line by line and returns the accepted
// sessions in input order.
//
// A line is accepted when it splits on commas into exactly four fields
// (id, start, end, duration) with non-empty start and end fields; anything
// else is expected noise in the log and skipped silently. Once a line is
// accepted, a timestamp or duration that fails to parse is fatal.
func LoadSessions(r io.Reader) ([]model.Session, error) {
	var sessions []model.Session

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		if len(parts) != 4 || parts[1] == "" || parts[2] == "" {
			continue
		}

		start, err := time.ParseInLocation(TimeLayout, parts[1], time.Local)
		if err != nil {
			return nil, &MalformedTimestampError{Field: "start", Value: parts[1]}
		}
		end, err := time.ParseInLocation(TimeLayout, parts[2], time.Local)
		if err != nil {
			return nil, &MalformedTimestampError{Field: "end", Value: parts[2]}
		}
		duration, err := ParseDuration(parts[3])
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, model.Session{
			Start:    start,
			End:      end,
			Duration: duration,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	return sessions, nil
}
