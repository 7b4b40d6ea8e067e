package lrc

import (
	"strings"
)

// String returns the canonical serialization of the document:
//
//	[key1: value1]
//	[key2: value2]
//
//	[mm:ss.xx]line text
//	[mm:ss.xx]line text
//
// Metadata is sorted by key, timed lines by time, with exactly one blank
// line between non-empty blocks. Plain (untimed) lines follow the timed
// block, again blank-line separated. Each timed entry carries exactly one
// time tag; use Format with WithGroupedTimeTags to merge runs of identical
// text.
func (l *Lyrics) String() string {
	return l.Format()
}

// Format serializes the document, applying the given formatting options.
// With no options the output equals String().
func (l *Lyrics) Format(opts ...FormatOption) string {
	options := defaultFormatOptions()
	for _, opt := range opts {
		opt(options)
	}

	var b strings.Builder
	blocks := 0

	writeBlockSep := func() {
		if blocks > 0 {
			b.WriteString("\n\n")
		}
		blocks++
	}

	if len(l.metadata) > 0 {
		writeBlockSep()
		for i, tag := range l.Metadata() {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(tag.String())
		}
	}

	if len(l.timed) > 0 {
		writeBlockSep()
		if options.groupTimeTags {
			l.writeGroupedTimed(&b)
		} else {
			for i, entry := range l.timed {
				if i > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(entry.Time.String())
				b.WriteString(entry.Text)
			}
		}
	}

	if plain := l.trimmedPlain(); len(plain) > 0 {
		writeBlockSep()
		for i, line := range plain {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line)
		}
	}

	return b.String()
}

// writeGroupedTimed emits the timed block with consecutive entries that
// share text collapsed into one multi-tag line.
func (l *Lyrics) writeGroupedTimed(b *strings.Builder) {
	for i := 0; i < len(l.timed); {
		if i > 0 {
			b.WriteByte('\n')
		}

		j := i
		for j < len(l.timed) && l.timed[j].Text == l.timed[i].Text {
			b.WriteString(l.timed[j].Time.String())
			j++
		}
		b.WriteString(l.timed[i].Text)
		i = j
	}
}

// trimmedPlain returns the plain block with leading and trailing empty
// lines dropped. An all-empty block disappears from the output.
func (l *Lyrics) trimmedPlain() []string {
	start, end := 0, len(l.plain)
	for start < end && strings.TrimSpace(l.plain[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(l.plain[end-1]) == "" {
		end--
	}
	return l.plain[start:end]
}
