// Package histline parses lines of `history` output into a timestamp and
// a command.
//
// Bash separates the history index, the formatted timestamp, and the
// command with nothing but whitespace, and HISTTIMEFORMAT may itself
// contain spaces, so naive field splitting cannot recover the boundary.
// Parse instead searches for the longest prefix of the line remainder that
// the configured format accepts, and treats everything after it as the
// command.
package histline

import (
	"strings"
	"time"
	"unicode"

	"github.com/ncruces/go-strftime"
)

// Entry is one parsed history line.
//
// Timestamp is nil when no date format was configured; the parser never
// invents a timestamp, so callers must substitute the current time before
// persisting such entries.
type Entry struct {
	Timestamp *time.Time
	Command   string
}

// Parse extracts the timestamp and command from one line of history
// output. dateFormat uses strftime directives (the HISTTIMEFORMAT
// contract) and may be empty, in which case the whole remainder is the
// command.
//
// Returns *MalformedLineError when the line does not start with a numeric
// index token followed by whitespace, and *MalformedTimestampError when a
// date format is set but no prefix of the remainder matches it.
func Parse(line, dateFormat string) (Entry, error) {
	remainder, err := splitIndex(line)
	if err != nil {
		return Entry{}, err
	}

	if dateFormat == "" {
		return Entry{Command: remainder}, nil
	}

	ts, command, err := parseTimestampPrefix(remainder, dateFormat)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Timestamp: &ts, Command: strings.TrimSpace(command)}, nil
}

// splitIndex strips the leading history-index token and the whitespace run
// after it, returning the right-trimmed remainder.
func splitIndex(line string) (string, error) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

	sep := strings.IndexFunc(trimmed, unicode.IsSpace)
	if sep < 0 {
		return "", &MalformedLineError{Line: line}
	}

	index := trimmed[:sep]
	for _, r := range index {
		if r < '0' || r > '9' {
			return "", &MalformedLineError{Line: line}
		}
	}

	remainder := strings.TrimLeftFunc(trimmed[sep:], unicode.IsSpace)
	remainder = strings.TrimRightFunc(remainder, unicode.IsSpace)
	if remainder == "" {
		return "", &MalformedLineError{Line: line}
	}
	return remainder, nil
}

// parseTimestampPrefix finds the boundary between the formatted timestamp
// at the start of text and the command after it.
//
// There is no delimiter, so the boundary is found explicitly: try
// decreasing-length prefixes of text against the format until one parses.
// The first success is the longest matching prefix; the rest is the
// command. This deliberately avoids introspecting parser error messages
// for "unconsumed input".
//
// Timestamps are interpreted in local time, matching how the shell renders
// HISTTIMEFORMAT.
func parseTimestampPrefix(text, dateFormat string) (time.Time, string, error) {
	layout, err := strftime.Layout(dateFormat)
	if err != nil {
		return time.Time{}, "", &MalformedTimestampError{Input: text, Format: dateFormat, cause: err}
	}

	for i := len(text); i > 0; i-- {
		ts, err := time.ParseInLocation(layout, text[:i], time.Local)
		if err == nil {
			return ts, text[i:], nil
		}
	}
	return time.Time{}, "", &MalformedTimestampError{Input: text, Format: dateFormat}
}
