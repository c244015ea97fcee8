package source

import "fmt"

// MalformedDurationError reports a duration token whose unit marker is not
// preceded by a valid unsigned integer.
type MalformedDurationError struct {
	Token string
}

func (e *MalformedDurationError) Error() string {
	return fmt.Sprintf("malformed duration %q", e.Token)
}

// MalformedTimestampError reports a timestamp that passed the structural
// line check but does not match the YY-MM-DD HH:MM:SS layout. This is fatal
// for the load, unlike structural rejection which is silent.
type MalformedTimestampError struct {
	Field string // "start" or "end"
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed %s timestamp %q", e.Field, e.Value)
}
