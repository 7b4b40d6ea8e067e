package lrc

import (
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/magiclen/lrc/internal/types"
)

// TimedLine is an alias to types.TimedLine.
// Re-exported from internal/types so the public API lives in one package.
type TimedLine = types.TimedLine

// Lyrics is an LRC document: a metadata set, a time-ordered sequence of
// timed lyric lines, and an optional trailing block of plain (untimed)
// lines.
//
// The timed sequence is kept sorted by timestamp after every mutation.
// Entries sharing a timestamp keep their insertion order. Metadata holds at
// most one entry per key; inserting again overwrites.
//
// Lyrics is a plain in-memory value owned by its caller. It is not safe for
// concurrent mutation.
type Lyrics struct {
	metadata map[string]IDTag
	timed    []TimedLine
	plain    []string

	// Warnings collected during a lenient parse (lines that strict mode
	// would have rejected). Empty for documents built via the API.
	Warnings []Warning
}

// New returns an empty document.
func New() *Lyrics {
	return &Lyrics{
		metadata: make(map[string]IDTag),
	}
}

// InsertMetadata inserts tag, replacing any existing entry with the same
// key.
func (l *Lyrics) InsertMetadata(tag IDTag) {
	if l.metadata == nil {
		l.metadata = make(map[string]IDTag)
	}
	l.metadata[tag.Key()] = tag
}

// Tag returns the metadata entry for key, if present. The lookup is
// case-insensitive.
func (l *Lyrics) Tag(key string) (IDTag, bool) {
	tag, ok := l.metadata[canonicalKey(key)]
	return tag, ok
}

// RemoveMetadata deletes the entry for key, reporting whether one existed.
func (l *Lyrics) RemoveMetadata(key string) bool {
	k := canonicalKey(key)
	if _, ok := l.metadata[k]; !ok {
		return false
	}
	delete(l.metadata, k)
	return true
}

// Metadata returns the metadata entries sorted by key.
func (l *Lyrics) Metadata() []IDTag {
	tags := make([]IDTag, 0, len(l.metadata))
	for _, key := range slices.Sorted(maps.Keys(l.metadata)) {
		tags = append(tags, l.metadata[key])
	}
	return tags
}

// AllTags returns an iterator over the metadata entries in key order.
func (l *Lyrics) AllTags() iter.Seq[IDTag] {
	return func(yield func(IDTag) bool) {
		for _, key := range slices.Sorted(maps.Keys(l.metadata)) {
			if !yield(l.metadata[key]) {
				return
			}
		}
	}
}

// AddTimedLine inserts a (time, text) entry, keeping the sequence sorted.
//
// The entry is placed after any existing entries with an equal timestamp,
// so insertion order is preserved among ties. Returns an
// *InvalidLineTextError when text contains control characters or an
// embedded bracketed tag.
func (l *Lyrics) AddTimedLine(time TimeTag, text string) error {
	if err := types.CheckLineText(text); err != nil {
		return err
	}
	l.insertTimed(TimedLine{Time: time, Text: text})
	return nil
}

// AddLineWithTimeTags inserts one timed entry per tag, all sharing text.
//
// With no tags the text degrades to a plain line (matching how an untagged
// line parses). The text is validated once.
func (l *Lyrics) AddLineWithTimeTags(times []TimeTag, text string) error {
	if err := types.CheckLineText(text); err != nil {
		return err
	}
	if len(times) == 0 {
		l.plain = append(l.plain, text)
		return nil
	}
	for _, t := range times {
		l.insertTimed(TimedLine{Time: t, Text: text})
	}
	return nil
}

// insertTimed places entry at its upper-bound position: after every
// existing entry whose time is <= entry.Time.
func (l *Lyrics) insertTimed(entry TimedLine) {
	i := sort.Search(len(l.timed), func(i int) bool {
		return l.timed[i].Time.Compare(entry.Time) > 0
	})
	l.timed = slices.Insert(l.timed, i, entry)
}

// RemoveTimedLine removes and returns the entry at index. Returns an
// *IndexOutOfRangeError when index is outside the sequence.
func (l *Lyrics) RemoveTimedLine(index int) (TimedLine, error) {
	if index < 0 || index >= len(l.timed) {
		return TimedLine{}, &IndexOutOfRangeError{Index: index, Len: len(l.timed)}
	}
	entry := l.timed[index]
	l.timed = slices.Delete(l.timed, index, index+1)
	return entry, nil
}

// FindTimedLineIndex returns the index of the last entry whose timestamp is
// <= time: the line that should display as "current" at that playback
// position. The second result is false when time precedes every entry or
// the document has no timed lines.
func (l *Lyrics) FindTimedLineIndex(time TimeTag) (int, bool) {
	// First entry strictly after time; the one before it is the answer.
	i := sort.Search(len(l.timed), func(i int) bool {
		return l.timed[i].Time.Compare(time) > 0
	})
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

// TimedLines returns a snapshot of the timed entries in sorted order.
// Mutating the returned slice does not affect the document.
func (l *Lyrics) TimedLines() []TimedLine {
	return slices.Clone(l.timed)
}

// AddLine appends an untimed lyric line after the timed block. The same
// text validation as AddTimedLine applies.
func (l *Lyrics) AddLine(text string) error {
	if err := types.CheckLineText(text); err != nil {
		return err
	}
	l.plain = append(l.plain, text)
	return nil
}

// RemoveLine removes and returns the plain line at index. Returns an
// *IndexOutOfRangeError when index is outside the sequence.
func (l *Lyrics) RemoveLine(index int) (string, error) {
	if index < 0 || index >= len(l.plain) {
		return "", &IndexOutOfRangeError{Index: index, Len: len(l.plain)}
	}
	line := l.plain[index]
	l.plain = slices.Delete(l.plain, index, index+1)
	return line, nil
}

// Lines returns a snapshot of the plain (untimed) lines.
func (l *Lyrics) Lines() []string {
	return slices.Clone(l.plain)
}

// Len returns the number of timed entries.
func (l *Lyrics) Len() int {
	return len(l.timed)
}

// Equal reports whether two documents hold the same metadata, timed
// entries, and plain lines. Warnings are ignored.
func (l *Lyrics) Equal(other *Lyrics) bool {
	if other == nil {
		return false
	}
	return maps.Equal(l.metadata, other.metadata) &&
		slices.Equal(l.timed, other.timed) &&
		slices.Equal(l.plain, other.plain)
}
