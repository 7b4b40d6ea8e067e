package types

import "regexp"

// Lyric text may hold any printable characters (tab included) but no other
// control characters, and no bracketed [x: y] tag of its own, which would
// reparse as metadata.
var (
	lineTextPattern    = regexp.MustCompile("^[^\x00-\x08\x0A-\x1F\x7F]*$")
	embeddedTagPattern = regexp.MustCompile(`\[.*:.*\]`)
)

// TimedLine pairs a lyric line with the moment it should display.
type TimedLine struct {
	Time TimeTag
	Text string
}

// CheckLineText validates lyric text for use on an LRC line. Returns an
// *InvalidLineTextError when the text contains control characters or an
// embedded bracketed tag.
func CheckLineText(text string) error {
	if !lineTextPattern.MatchString(text) {
		return &InvalidLineTextError{Text: text, Reason: "text must not contain control characters"}
	}
	if embeddedTagPattern.MatchString(text) {
		return &InvalidLineTextError{Text: text, Reason: "text must not embed a bracketed tag"}
	}
	return nil
}
