package histline

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedLineError reports a history line that does not start with a
// numeric index token followed by whitespace and a command.
type MalformedLineError struct {
	// Line is the offending input line.
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed history line: %q", strings.TrimRight(e.Line, "\n"))
}

// MalformedTimestampError reports a line remainder that has no prefix
// matching the configured date format.
type MalformedTimestampError struct {
	// Input is the remainder whose prefix failed to parse.
	Input string

	// Format is the strftime format in effect.
	Format string

	cause error
}

func (e *MalformedTimestampError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("timestamp of %q does not match format %q: %v", e.Input, e.Format, e.cause)
	}
	return fmt.Sprintf("timestamp of %q does not match format %q", e.Input, e.Format)
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.cause
}

// IsMalformed returns true for either per-line parse error. Uses errors.As
// to handle wrapped errors.
func IsMalformed(err error) bool {
	var le *MalformedLineError
	var te *MalformedTimestampError
	return errors.As(err, &le) || errors.As(err, &te)
}
