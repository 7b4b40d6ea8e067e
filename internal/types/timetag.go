package types

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timeTagPattern matches the bare timestamp portion of a time tag:
// one or more minute digits, exactly two second digits, and an optional
// two-digit hundredths fraction.
var timeTagPattern = regexp.MustCompile(`^(\d+):(\d{2})(?:\.(\d{2}))?$`)

// timeShapedPattern is looser than timeTagPattern: it matches anything that
// reads as a timestamp (1-2 second/fraction digits, any minute count).
// The scanner uses it to decide that a bracketed token was meant to be a
// time tag, so that out-of-range values like [99:99.00] report a time-tag
// error instead of being misread as metadata.
var timeShapedPattern = regexp.MustCompile(`^\d+:\d{1,2}(?:\.\d{1,2})?$`)

// TimeTag is a timestamp in the format [mm:ss.xx] marking when a lyric line
// should display.
//
// TimeTag is an immutable comparable value. The zero value is 00:00.00.
// Two TimeTags compare equal with == exactly when they denote the same
// elapsed time.
type TimeTag struct {
	// Total elapsed time in hundredths of a second.
	hundredths int64
}

// NewTimeTag builds a TimeTag from its components.
//
// minutes must be non-negative, seconds in [0, 59], and hundredths in
// [0, 99]. There is no upper bound on minutes. Returns a *FormatError if
// any component is out of range.
func NewTimeTag(minutes, seconds, hundredths int) (TimeTag, error) {
	switch {
	case minutes < 0:
		return TimeTag{}, &FormatError{
			Input:  fmt.Sprintf("%d:%02d.%02d", minutes, seconds, hundredths),
			Reason: "minutes must not be negative",
		}
	case int64(minutes) > (math.MaxInt64-5999)/6000:
		// Keeps minutes*6000 + seconds*100 + hundredths within int64.
		return TimeTag{}, &FormatError{
			Input:  fmt.Sprintf("%d:%02d.%02d", minutes, seconds, hundredths),
			Reason: "minutes out of range",
		}
	case seconds < 0 || seconds > 59:
		return TimeTag{}, &FormatError{
			Input:  fmt.Sprintf("%d:%02d.%02d", minutes, seconds, hundredths),
			Reason: "seconds must be in the range 0-59",
		}
	case hundredths < 0 || hundredths > 99:
		return TimeTag{}, &FormatError{
			Input:  fmt.Sprintf("%d:%02d.%02d", minutes, seconds, hundredths),
			Reason: "hundredths must be in the range 0-99",
		}
	}

	return TimeTag{hundredths: int64(minutes)*6000 + int64(seconds)*100 + int64(hundredths)}, nil
}

// ParseTimeTag parses a timestamp in the form "mm:ss.xx" or "mm:ss".
//
// A surrounding bracket pair is tolerated, so a whole "[mm:ss.xx]" tag
// parses as well. When the fraction is omitted it defaults to zero.
// Returns a *FormatError if the text does not match the pattern or if
// seconds or hundredths are out of range.
func ParseTimeTag(s string) (TimeTag, error) {
	body := s
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}

	m := timeTagPattern.FindStringSubmatch(body)
	if m == nil {
		return TimeTag{}, &FormatError{Input: s, Reason: "expected mm:ss.xx or mm:ss"}
	}

	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		// Minute runs longer than an int64 of hundredths can hold.
		return TimeTag{}, &FormatError{Input: s, Reason: "minutes out of range"}
	}

	seconds, _ := strconv.Atoi(m[2])
	hundredths := 0
	if m[3] != "" {
		hundredths, _ = strconv.Atoi(m[3])
	}

	return NewTimeTag(minutes, seconds, hundredths)
}

// TimeShaped reports whether s reads as a timestamp, valid or not.
// Used by the line scanner to classify bracketed tokens.
func TimeShaped(s string) bool {
	return timeShapedPattern.MatchString(s)
}

// Minutes returns the minute component.
func (t TimeTag) Minutes() int {
	return int(t.hundredths / 6000)
}

// Seconds returns the second component, in [0, 59].
func (t TimeTag) Seconds() int {
	return int(t.hundredths / 100 % 60)
}

// Hundredths returns the fractional component, in [0, 99].
func (t TimeTag) Hundredths() int {
	return int(t.hundredths % 100)
}

// Duration returns the elapsed time the tag denotes.
func (t TimeTag) Duration() time.Duration {
	return time.Duration(t.hundredths) * 10 * time.Millisecond
}

// Compare orders two tags by elapsed time. It returns -1 when t is earlier
// than u, 0 when equal, and +1 when later.
func (t TimeTag) Compare(u TimeTag) int {
	switch {
	case t.hundredths < u.hundredths:
		return -1
	case t.hundredths > u.hundredths:
		return 1
	default:
		return 0
	}
}

// Timestamp renders the bare timestamp "mm:ss.xx", minutes zero-padded to
// at least two digits.
func (t TimeTag) Timestamp() string {
	return fmt.Sprintf("%02d:%02d.%02d", t.Minutes(), t.Seconds(), t.Hundredths())
}

// String renders the bracketed tag "[mm:ss.xx]".
func (t TimeTag) String() string {
	return "[" + t.Timestamp() + "]"
}
