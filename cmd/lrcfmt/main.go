// Command lrcfmt canonicalizes LRC lyric files.
//
// Usage:
//
//	lrcfmt [flags] <file.lrc>
//
// By default the canonical form of the document is printed to stdout.
// Flags:
//
//	-w          rewrite the file in place instead of printing
//	-grouped    merge runs of identical text into multi-tag lines
//	-lenient    skip malformed lines (reported on stderr) instead of failing
//	-known      reject metadata keys outside the standard vocabulary
//	-at mm:ss.xx  print the lyric line current at the given position and exit
//	-watch      with -w, keep running and rewrite whenever the file changes
//
// Input encoding is detected: UTF-8 (with or without BOM) is used as-is,
// anything else is decoded as GBK. Output is always UTF-8.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/magiclen/lrc"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func main() {
	write := flag.Bool("w", false, "rewrite the file in place")
	grouped := flag.Bool("grouped", false, "merge runs of identical text into multi-tag lines")
	lenient := flag.Bool("lenient", false, "skip malformed lines instead of failing")
	known := flag.Bool("known", false, "reject metadata keys outside the standard vocabulary")
	at := flag.String("at", "", "print the line current at the given mm:ss.xx position")
	watch := flag.Bool("watch", false, "with -w, rewrite whenever the file changes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: lrcfmt [flags] <file.lrc>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := log.New(os.Stderr, "", 0)

	var parseOpts []lrc.ParseOption
	if *lenient {
		parseOpts = append(parseOpts, lrc.WithLenientParsing())
	}
	if *known {
		parseOpts = append(parseOpts, lrc.WithKnownKeysOnly())
	}
	var formatOpts []lrc.FormatOption
	if *grouped {
		formatOpts = append(formatOpts, lrc.WithGroupedTimeTags())
	}

	if *at != "" {
		pos, err := lrc.ParseTimeTag(*at)
		if err != nil {
			logger.Fatalf("bad -at position: %v", err)
		}
		lyrics, err := load(path, parseOpts)
		if err != nil {
			logger.Fatal(err)
		}
		reportWarnings(logger, path, lyrics)
		i, ok := lyrics.FindTimedLineIndex(pos)
		if !ok {
			logger.Fatalf("%s: no line is current at %s", path, pos.Timestamp())
		}
		fmt.Println(lyrics.TimedLines()[i].Text)
		return
	}

	if err := run(path, *write, parseOpts, formatOpts, logger); err != nil {
		logger.Fatal(err)
	}

	if *watch {
		if !*write {
			logger.Fatal("-watch requires -w")
		}
		if err := watchLoop(path, parseOpts, formatOpts, logger); err != nil {
			logger.Fatal(err)
		}
	}
}

func run(path string, write bool, parseOpts []lrc.ParseOption, formatOpts []lrc.FormatOption, logger *log.Logger) error {
	lyrics, err := load(path, parseOpts)
	if err != nil {
		return err
	}
	reportWarnings(logger, path, lyrics)

	out := lyrics.Format(formatOpts...)
	if !write {
		fmt.Println(out)
		return nil
	}

	// Skip the rewrite when the file is already canonical, so watch mode
	// does not react to its own writes.
	if current, err := os.ReadFile(path); err == nil && string(current) == out+"\n" {
		return nil
	}
	return os.WriteFile(path, []byte(out+"\n"), 0o644)
}

func watchLoop(path string, parseOpts []lrc.ParseOption, formatOpts []lrc.FormatOption, logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file rather than
	// write it in place, which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.Printf("watching %s", path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventAbs, err := filepath.Abs(event.Name)
			if err != nil || eventAbs != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := run(path, true, parseOpts, formatOpts, logger); err != nil {
				logger.Printf("%s: %v", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("watch error: %v", err)
		}
	}
}

func load(path string, parseOpts []lrc.ParseOption) (*lrc.Lyrics, error) {
	content, err := readTextFile(path)
	if err != nil {
		return nil, err
	}
	lyrics, err := lrc.ParseString(content, parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lyrics, nil
}

// readTextFile reads a lyric file and returns UTF-8 content. A UTF-8 BOM is
// stripped; content that is not valid UTF-8 is decoded as GBK, the common
// legacy encoding for LRC files.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if bytes.HasPrefix(data, utf8BOM) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), simplifiedchinese.GBK.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decode %s as GBK: %w", filepath.Base(path), err)
	}
	return string(decoded), nil
}

func reportWarnings(logger *log.Logger, path string, lyrics *lrc.Lyrics) {
	for _, w := range lyrics.Warnings {
		logger.Printf("%s: skipped %s", path, w)
	}
}
