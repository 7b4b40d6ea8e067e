package lrc

import (
	"github.com/magiclen/lrc/internal/types"
)

// FormatError is an alias to types.FormatError.
// Re-exported from internal/types so the public API lives in one package.
type FormatError = types.FormatError

// InvalidKeyError is an alias to types.InvalidKeyError.
// Re-exported from internal/types so the public API lives in one package.
type InvalidKeyError = types.InvalidKeyError

// InvalidValueError is an alias to types.InvalidValueError.
// Re-exported from internal/types so the public API lives in one package.
type InvalidValueError = types.InvalidValueError

// InvalidLineTextError is an alias to types.InvalidLineTextError.
// Re-exported from internal/types so the public API lives in one package.
type InvalidLineTextError = types.InvalidLineTextError

// IndexOutOfRangeError is an alias to types.IndexOutOfRangeError.
// Re-exported from internal/types so the public API lives in one package.
type IndexOutOfRangeError = types.IndexOutOfRangeError

// ParseError is an alias to types.ParseError.
// Re-exported from internal/types so the public API lives in one package.
type ParseError = types.ParseError

// Warning is an alias to types.Warning.
// Re-exported from internal/types so the public API lives in one package.
type Warning = types.Warning
