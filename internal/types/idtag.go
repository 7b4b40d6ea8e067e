package types

import (
	"regexp"
	"strings"
)

// Key and value grammar for ID tags. Keys are alphabetic labels; values may
// hold any printable text except control characters and brackets, which
// would break the line syntax on re-emission.
var (
	idKeyPattern   = regexp.MustCompile(`^[A-Za-z]+$`)
	idValuePattern = regexp.MustCompile("^[^\x00-\x08\x0A-\x1F\x7F\\[\\]]*$")
)

// KnownKeys is the standard LRC metadata vocabulary. Parsing accepts
// arbitrary extension keys by default; the known-keys-only policy restricts
// tags to this set.
var KnownKeys = map[string]bool{
	"ti":     true, // title
	"ar":     true, // artist
	"al":     true, // album
	"au":     true, // author of the lyrics
	"lr":     true, // lyricist
	"by":     true, // author of the LRC file
	"re":     true, // editor
	"ve":     true, // editor version
	"length": true,
	"offset": true,
}

// IDTag is a metadata entry in the format [key: value], such as the track
// title or artist.
//
// Tag identity is the key, compared case-insensitively; a document holds at
// most one tag per key. The zero value is not a valid tag; construct
// through NewIDTag or the parser.
type IDTag struct {
	key   string // canonical lower case
	value string
}

// NewIDTag builds an IDTag from a key and value.
//
// The key is trimmed and must be purely alphabetic; it is stored in its
// canonical lower-case form. The value is trimmed and must not contain
// control characters or square brackets. Returns *InvalidKeyError or
// *InvalidValueError on violation.
func NewIDTag(key, value string) (IDTag, error) {
	key = strings.TrimSpace(key)
	if !idKeyPattern.MatchString(key) {
		return IDTag{}, &InvalidKeyError{Key: key, Reason: "key must be one or more letters"}
	}

	value = strings.TrimSpace(value)
	if !idValuePattern.MatchString(value) {
		return IDTag{}, &InvalidValueError{
			Value:  value,
			Reason: "value must not contain control characters or square brackets",
		}
	}

	return IDTag{key: strings.ToLower(key), value: value}, nil
}

// ParseIDTagLine parses a whole metadata line of the form "[key: value]".
//
// The space after the colon is conventional and optional. Returns a
// *FormatError when the bracket or colon structure is missing, and the
// NewIDTag validation errors when the content is malformed.
func ParseIDTagLine(s string) (IDTag, error) {
	line := strings.TrimSpace(s)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return IDTag{}, &FormatError{Input: s, Reason: "expected a bracketed [key: value] line"}
	}

	body := line[1 : len(line)-1]
	key, value, ok := strings.Cut(body, ":")
	if !ok {
		return IDTag{}, &FormatError{Input: s, Reason: "missing colon between key and value"}
	}

	return NewIDTag(key, value)
}

// Key returns the canonical (lower-case) key.
func (t IDTag) Key() string {
	return t.key
}

// Value returns the trimmed value text.
func (t IDTag) Value() string {
	return t.value
}

// String renders the tag as "[key: value]".
func (t IDTag) String() string {
	return "[" + t.key + ": " + t.value + "]"
}
