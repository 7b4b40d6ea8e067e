// Package scan tokenizes single LRC lines.
//
// Each input line is classified into one of a small set of shapes (blank,
// metadata, timed, plain, comment) so the document parser can match
// exhaustively over the outcomes instead of re-inspecting the text.
package scan

import (
	"strings"

	"github.com/magiclen/lrc/internal/types"
)

// Kind identifies the structural shape of a scanned line.
type Kind int

const (
	// Blank is a line with no content.
	Blank Kind = iota
	// Metadata is a line carrying only ID tags.
	Metadata
	// Timed is a line carrying one or more time tags, possibly mixed with
	// ID tags, followed by lyric text.
	Timed
	// Plain is untagged lyric text.
	Plain
	// Comment is a line neutralized by an empty-label [:] tag.
	Comment
)

// Line is the outcome of scanning one line of LRC input.
//
// A single physical line may contribute several time tags and several ID
// tags at once; the scanner surfaces all of them. Text is the lyric payload
// remaining after the leading tags.
type Line struct {
	Kind  Kind
	Times []types.TimeTag
	Tags  []types.IDTag
	Text  string
}

// Classify scans one raw line.
//
// Leading bracketed tokens are consumed one by one. A token that reads as a
// timestamp becomes a time tag (out-of-range values are a *FormatError, not
// metadata); a token with a colon becomes an ID tag; a token whose label is
// empty is a comment tag and discards the rest of the line. When
// knownKeysOnly is set, ID tags outside the standard vocabulary are
// rejected with an *InvalidKeyError.
func Classify(raw string, knownKeysOnly bool) (Line, error) {
	var out Line
	comment := false
	done := false

	rest := strings.TrimSpace(raw)

	for !done && strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			// No closing bracket on this line: not a tag, so the rest is
			// lyric text. CheckLineText below decides whether it is legal.
			break
		}

		body := rest[1:end]
		if strings.ContainsRune(body, '[') {
			break
		}

		switch {
		case types.TimeShaped(strings.TrimSpace(body)):
			t, err := types.ParseTimeTag(strings.TrimSpace(body))
			if err != nil {
				return Line{}, err
			}
			out.Times = append(out.Times, t)

		case strings.ContainsRune(body, ':'):
			key, value, _ := strings.Cut(body, ":")
			if strings.TrimSpace(key) == "" {
				// Comment tag, conventionally [:]. The remainder of the
				// line is discarded.
				comment = true
				rest = ""
			} else {
				tag, err := types.NewIDTag(key, value)
				if err != nil {
					return Line{}, err
				}
				if knownKeysOnly && !types.KnownKeys[tag.Key()] {
					return Line{}, &types.InvalidKeyError{
						Key:    tag.Key(),
						Reason: "not a recognized LRC metadata key",
					}
				}
				out.Tags = append(out.Tags, tag)
			}

		default:
			// Neither a time tag nor key: value, e.g. a [Chorus] marker.
			// The token and everything after it is lyric text.
			done = true
		}

		if comment || done {
			break
		}
		rest = strings.TrimLeft(rest[end+1:], " \t")
	}

	if err := types.CheckLineText(rest); err != nil {
		return Line{}, err
	}

	// ID tags consume the whole line: free text trailing a metadata-only
	// line is dropped rather than treated as a lyric.
	if len(out.Times) == 0 && len(out.Tags) > 0 {
		rest = ""
	}
	out.Text = rest

	switch {
	case len(out.Times) > 0:
		out.Kind = Timed
	case len(out.Tags) > 0:
		out.Kind = Metadata
	case comment:
		out.Kind = Comment
	case rest != "":
		out.Kind = Plain
	default:
		out.Kind = Blank
	}

	return out, nil
}
