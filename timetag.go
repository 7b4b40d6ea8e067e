package lrc

import (
	"github.com/magiclen/lrc/internal/types"
)

// TimeTag is an alias to types.TimeTag.
// Re-exported from internal/types so the public API lives in one package.
type TimeTag = types.TimeTag

// NewTimeTag builds a TimeTag from minute, second, and hundredths-of-second
// components, validating their ranges.
func NewTimeTag(minutes, seconds, hundredths int) (TimeTag, error) {
	return types.NewTimeTag(minutes, seconds, hundredths)
}

// ParseTimeTag parses a timestamp in the form "mm:ss.xx" or "mm:ss",
// with or without surrounding brackets.
func ParseTimeTag(s string) (TimeTag, error) {
	return types.ParseTimeTag(s)
}
