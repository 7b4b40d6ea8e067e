package types

import "fmt"

// FormatError is returned when a time tag or tag line does not match the
// token-level LRC syntax.
type FormatError struct {
	Input  string // the offending text
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed tag %q: %s", e.Input, e.Reason)
}

// InvalidKeyError is returned when a metadata key violates the key grammar.
type InvalidKeyError struct {
	Key    string
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid metadata key %q: %s", e.Key, e.Reason)
}

// InvalidValueError is returned when a metadata value violates the value
// grammar.
type InvalidValueError struct {
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid metadata value %q: %s", e.Value, e.Reason)
}

// InvalidLineTextError is returned when lyric text cannot be represented on
// an LRC line, for example because it embeds control characters or a
// bracketed tag of its own.
type InvalidLineTextError struct {
	Text   string
	Reason string
}

func (e *InvalidLineTextError) Error() string {
	return fmt.Sprintf("invalid lyric text %q: %s", e.Text, e.Reason)
}

// IndexOutOfRangeError is returned when a mutation addresses a position
// outside the current line sequence.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (len %d)", e.Index, e.Len)
}

// ParseError is returned when a whole-document parse fails. It carries the
// 1-based line number and the token-level cause.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error  // underlying token-level error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Warning records a line skipped during a lenient parse.
//
// Warnings indicate input the strict parser would reject. They are
// collected in Lyrics.Warnings so callers can report data-quality issues
// without failing the parse.
type Warning struct {
	// Line is the 1-based line number of the skipped input.
	Line int

	// Message describes why the line was skipped.
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}
