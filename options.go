package lrc

// ParseOption configures document parsing.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	lyrics, err := lrc.ParseString(input,
//	    lrc.WithLenientParsing(),
//	    lrc.WithKnownKeysOnly(),
//	)
type ParseOption func(*parseOptions)

// parseOptions holds configuration for parsing documents.
type parseOptions struct {
	lenient       bool // Skip malformed lines instead of failing
	knownKeysOnly bool // Restrict metadata to the standard vocabulary
}

// defaultParseOptions returns the default configuration.
func defaultParseOptions() *parseOptions {
	return &parseOptions{
		lenient:       false,
		knownKeysOnly: false,
	}
}

// WithLenientParsing skips malformed lines instead of failing.
//
// By default parsing is strict: the first structurally invalid line aborts
// with a *ParseError and no document is returned.
//
// With lenient parsing, invalid lines are dropped and a Warning carrying
// the line number is recorded in Lyrics.Warnings for each one.
//
// Example:
//
//	lyrics, err := lrc.ParseString(input, lrc.WithLenientParsing())
//	// err is nil even for partially malformed input;
//	// inspect lyrics.Warnings for what was skipped
func WithLenientParsing() ParseOption {
	return func(o *parseOptions) {
		o.lenient = true
	}
}

// WithKnownKeysOnly restricts metadata tags to the standard LRC vocabulary
// (ti, ar, al, au, lr, by, re, ve, length, offset).
//
// By default any alphabetic key is accepted as an extension tag. With this
// option an unrecognized key is a parse failure in strict mode, or a
// skipped line in lenient mode.
//
// Example:
//
//	lyrics, err := lrc.ParseString(input, lrc.WithKnownKeysOnly())
//	// err != nil if the input carries e.g. [foo: bar]
func WithKnownKeysOnly() ParseOption {
	return func(o *parseOptions) {
		o.knownKeysOnly = true
	}
}
