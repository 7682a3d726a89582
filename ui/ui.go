package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The
// terminal maps each value to a colour; tests and JSON see plain text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain
	SeveritySuccess                 // green, live / healthy
	SeverityWarn                    // yellow, paused / degraded
	SeverityError                   // red, disconnected / failing
)

// StyledText pairs a plain string with a Severity annotation.
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as its plain Text.
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is the output surface of basewatch commands.
//
// TerminalUI writes to a real terminal and RecordingUI captures every call
// for tests. Line oriented methods are used by one shot commands and the
// plain watch mode; Frame replaces the whole screen in interactive mode.
type UI interface {
	// Style returns t coloured according to its Severity, or the plain text
	// when colours are off.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)

	// KeyValue renders an aligned label / value block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with an optional header row.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner and returns its stop function. It
	// is a no-op outside of a terminal.
	Spinner(msg string) func()

	// Frame clears the screen and draws content from the top left corner.
	Frame(content string)

	// Width is the terminal width in columns, or a default when unknown.
	Width() int

	// Indent returns a child UI one level deeper sharing the same writer.
	Indent() UI

	// Writer returns a writer prefixing every line with the indentation.
	Writer() io.Writer
}

// StatusText maps a dashboard status label to its severity.
func StatusText(label string) StyledText {
	switch label {
	case "Live":
		return StyledText{Text: label, Severity: SeveritySuccess}
	case "Paused":
		return StyledText{Text: label, Severity: SeverityWarn}
	default:
		return StyledText{Text: label, Severity: SeverityError}
	}
}
