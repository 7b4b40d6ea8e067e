package lrc

import (
	"strings"

	"github.com/magiclen/lrc/internal/types"
)

// IDTag is an alias to types.IDTag.
// Re-exported from internal/types so the public API lives in one package.
type IDTag = types.IDTag

// NewIDTag builds a metadata tag from a key and value, validating both
// against the LRC tag grammar.
func NewIDTag(key, value string) (IDTag, error) {
	return types.NewIDTag(key, value)
}

// ParseIDTagLine parses a whole "[key: value]" metadata line.
func ParseIDTagLine(s string) (IDTag, error) {
	return types.ParseIDTagLine(s)
}

// KnownKey reports whether key belongs to the standard LRC metadata
// vocabulary (ti, ar, al, au, lr, by, re, ve, length, offset). The check is
// case-insensitive.
func KnownKey(key string) bool {
	return types.KnownKeys[canonicalKey(key)]
}

// canonicalKey folds a metadata key to its case-insensitive identity.
func canonicalKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
