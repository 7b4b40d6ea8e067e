// Package lrc models the LRC lyrics format: plain-text files pairing
// timestamps with lines of song lyrics, plus optional metadata tags.
//
// lrc is a pure in-memory format engine. It parses `.lrc` text into a
// Lyrics document, lets you edit it, and re-emits canonical LRC text.
// File I/O is deliberately left to the caller.
//
// # Quick Start
//
// Parsing a document and finding the line to display:
//
//	lyrics, err := lrc.ParseString(input)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	at, _ := lrc.ParseTimeTag("00:13.00")
//	if i, ok := lyrics.FindTimedLineIndex(at); ok {
//		fmt.Println(lyrics.TimedLines()[i].Text)
//	}
//
// Building a document by hand:
//
//	lyrics := lrc.New()
//	title, _ := lrc.NewIDTag("ti", "Let's Twist Again")
//	lyrics.InsertMetadata(title)
//
//	t, _ := lrc.ParseTimeTag("00:12.00")
//	_ = lyrics.AddTimedLine(t, "Naku Penda Piya-Naku Taka Piya-Mpenziwe")
//
//	fmt.Println(lyrics.String())
//
// # Document Model
//
// A Lyrics document holds three kinds of content:
//
//	[IDTag]     - metadata entries ([ti: ...], [ar: ...]), one per key
//	[TimedLine] - (TimeTag, text) pairs, always kept sorted by time
//	plain lines - untimed lyric text, kept after the timed block
//
// Timed lines stay sorted by timestamp after every mutation; entries with
// equal timestamps keep their insertion order. Metadata keys are
// case-insensitive and a document holds at most one value per key.
//
// # Parsing Modes
//
// Parsing is strict by default: the first structurally invalid line aborts
// with a *ParseError carrying the line number and cause. WithLenientParsing
// skips invalid lines instead, recording each skip in Lyrics.Warnings.
//
//	lyrics, err := lrc.ParseString(input, lrc.WithLenientParsing())
//	for _, w := range lyrics.Warnings {
//		log.Println(w)
//	}
//
// # Canonical Output
//
// String() emits the metadata block sorted by key, one blank line, then the
// timed lines sorted by time, one time tag per line. Format with
// WithGroupedTimeTags collapses consecutive entries that share text into a
// single multi-tag line:
//
//	[00:12.00][01:15.00]Naku Penda Piya-Naku Taka Piya-Mpenziwe
//
// # Concurrency
//
// A Lyrics value is not safe for concurrent mutation; callers sharing one
// across goroutines must serialize access. ParseMany parses independent
// documents concurrently.
package lrc
