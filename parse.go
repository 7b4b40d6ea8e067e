package lrc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/magiclen/lrc/internal/scan"
)

// Parse reads an LRC document from r.
//
// Input is consumed line by line. Each line is classified as metadata,
// timed lyric, plain lyric, comment, or blank; multi-tag lines such as
// "[00:12.00][01:15.00]text" expand into one timed entry per tag.
//
// Parsing is strict by default: the first structurally invalid line aborts
// with a *ParseError carrying the 1-based line number and the token-level
// cause, and no document is returned. With WithLenientParsing, invalid
// lines are skipped and recorded in Lyrics.Warnings instead.
//
// Example:
//
//	lyrics, err := lrc.Parse(file)
//	if err != nil {
//		var perr *lrc.ParseError
//		if errors.As(err, &perr) {
//			log.Printf("bad input at line %d: %v", perr.Line, perr.Err)
//		}
//		return err
//	}
func Parse(r io.Reader, opts ...ParseOption) (*Lyrics, error) {
	options := defaultParseOptions()
	for _, opt := range opts {
		opt(options)
	}

	lyrics := New()

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		raw := scanner.Text()

		line, err := scan.Classify(raw, options.knownKeysOnly)
		if err != nil {
			if options.lenient {
				lyrics.Warnings = append(lyrics.Warnings, Warning{
					Line:    lineno,
					Message: err.Error(),
				})
				continue
			}
			return nil, &ParseError{Line: lineno, Text: raw, Err: err}
		}

		// Metadata tags may appear on any line shape, including mixed in
		// with time tags.
		for _, tag := range line.Tags {
			lyrics.InsertMetadata(tag)
		}

		switch line.Kind {
		case scan.Timed:
			// Classify already validated the text.
			_ = lyrics.AddLineWithTimeTags(line.Times, line.Text)
		case scan.Plain:
			_ = lyrics.AddLine(line.Text)
		case scan.Metadata, scan.Comment, scan.Blank:
			// Nothing further to record.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return lyrics, nil
}

// ParseString parses an LRC document held in a string.
//
// See Parse for the parsing rules and options.
func ParseString(s string, opts ...ParseOption) (*Lyrics, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseMany parses multiple documents concurrently.
//
// Documents are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the inputs. If any document
// fails to parse, the first error is returned and no results are.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	docs, err := lrc.ParseMany(ctx, inputs...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, d := range docs {
//		fmt.Println(d.Len(), "timed lines")
//	}
func ParseMany(ctx context.Context, inputs ...string) ([]*Lyrics, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Lyrics, len(inputs))

	for i, input := range inputs {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			lyrics, err := ParseString(input)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}

			results[i] = lyrics
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
