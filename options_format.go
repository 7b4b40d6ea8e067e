package lrc

// FormatOption configures serialization.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	text := lyrics.Format(lrc.WithGroupedTimeTags())
type FormatOption func(*formatOptions)

// formatOptions holds configuration for emitting documents.
type formatOptions struct {
	groupTimeTags bool // Collapse same-text runs into multi-tag lines
}

// defaultFormatOptions returns the default configuration.
func defaultFormatOptions() *formatOptions {
	return &formatOptions{
		groupTimeTags: false,
	}
}

// WithGroupedTimeTags collapses consecutive timed entries that share the
// same text into a single multi-tag line.
//
// The canonical form emits one time tag per line:
//
//	[00:12.00]Chorus
//	[01:15.00]Chorus
//
// With grouping, runs of identical text merge:
//
//	[00:12.00][01:15.00]Chorus
//
// Grouping is a formatting optimization; the parsed document is identical
// either way, since a multi-tag line expands back into one entry per tag.
func WithGroupedTimeTags() FormatOption {
	return func(o *formatOptions) {
		o.groupTimeTags = true
	}
}
