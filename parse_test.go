package lrc_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/magiclen/lrc"
)

func TestParseString_Canonical(t *testing.T) {
	input := strings.Join([]string{
		"[ar:Chubby Checker oppure  Beatles, The]",
		"[al:Hits Of The 60's - Vol. 2 – Oldies]",
		"[ti:Let's Twist Again]",
		"[au:Written by Kal Mann / Dave Appell, 1961]",
		"[length: 2:23]",
		"[:] This is a comment.",
		"[00:12.00][01:15.00]Naku Penda Piya-Naku Taka Piya-Mpenziwe",
		"[00:15.30][01:18.00]Some more lyrics ...",
		"[:] This is a comment.",
		"Plain line 1",
		"Plain line 2",
	}, "\n")

	want := strings.Join([]string{
		"[al: Hits Of The 60's - Vol. 2 – Oldies]",
		"[ar: Chubby Checker oppure  Beatles, The]",
		"[au: Written by Kal Mann / Dave Appell, 1961]",
		"[length: 2:23]",
		"[ti: Let's Twist Again]",
		"",
		"[00:12.00]Naku Penda Piya-Naku Taka Piya-Mpenziwe",
		"[00:15.30]Some more lyrics ...",
		"[01:15.00]Naku Penda Piya-Naku Taka Piya-Mpenziwe",
		"[01:18.00]Some more lyrics ...",
		"",
		"Plain line 1",
		"Plain line 2",
	}, "\n")

	lyrics, err := lrc.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := lyrics.String(); got != want {
		t.Errorf("canonical form mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseString_MultiTimestampExpansion(t *testing.T) {
	lyrics, err := lrc.ParseString("[00:12.00][01:15.00]Hello")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	entries := lyrics.TimedLines()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Time != mustTimeTag(t, "00:12.00") || entries[0].Text != "Hello" {
		t.Errorf("entries[0] = %v, want 00:12.00 Hello", entries[0])
	}
	if entries[1].Time != mustTimeTag(t, "01:15.00") || entries[1].Text != "Hello" {
		t.Errorf("entries[1] = %v, want 01:15.00 Hello", entries[1])
	}
}

func TestParseString_MixedTagsOnTimedLine(t *testing.T) {
	lyrics, err := lrc.ParseString("[00:12.00][length: 2:23]Naku Penda")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	want := "[length: 2:23]\n\n[00:12.00]Naku Penda"
	if got := lyrics.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseString_CommentWipesLine(t *testing.T) {
	lyrics, err := lrc.ParseString("[00:12.00][:]Naku Penda")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := lyrics.String(); got != "[00:12.00]" {
		t.Errorf("got %q, want %q", got, "[00:12.00]")
	}
}

func TestParseString_StrictRejectsMalformed(t *testing.T) {
	input := "[00:12.00]fine\n[99:99.00]broken"

	_, err := lrc.ParseString(input)
	if err == nil {
		t.Fatal("expected error")
	}

	var perr *lrc.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	var ferr *lrc.FormatError
	if !errors.As(perr.Err, &ferr) {
		t.Errorf("underlying cause is %T, want *FormatError", perr.Err)
	}
}

func TestParseString_LenientSkipsMalformed(t *testing.T) {
	input := "[00:12.00]fine\n[99:99.00]broken\n[00:15.30]also fine"

	lyrics, err := lrc.ParseString(input, lrc.WithLenientParsing())
	if err != nil {
		t.Fatalf("lenient parse failed: %v", err)
	}
	if lyrics.Len() != 2 {
		t.Errorf("got %d timed lines, want 2", lyrics.Len())
	}
	if len(lyrics.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(lyrics.Warnings))
	}
	if lyrics.Warnings[0].Line != 2 {
		t.Errorf("warning line = %d, want 2", lyrics.Warnings[0].Line)
	}
}

func TestParseString_KnownKeysOnly(t *testing.T) {
	input := "[ti: X]\n[lang: en]"

	if _, err := lrc.ParseString(input); err != nil {
		t.Fatalf("extension key rejected by default: %v", err)
	}

	_, err := lrc.ParseString(input, lrc.WithKnownKeysOnly())
	if err == nil {
		t.Fatal("expected error with WithKnownKeysOnly")
	}
	var kerr *lrc.InvalidKeyError
	if !errors.As(err, &kerr) {
		t.Errorf("expected *InvalidKeyError cause, got %T", err)
	}
}

func TestParse_CRLFInput(t *testing.T) {
	lyrics, err := lrc.Parse(strings.NewReader("[ti: X]\r\n\r\n[00:12.00]A\r\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	entries := lyrics.TimedLines()
	if len(entries) != 1 || entries[0].Text != "A" {
		t.Errorf("entries = %v, want one entry with text A", entries)
	}
}

func TestLyrics_EndToEnd(t *testing.T) {
	lyrics := lrc.New()
	lyrics.InsertMetadata(mustIDTag(t, "al", "X"))
	lyrics.InsertMetadata(mustIDTag(t, "ti", "Y"))
	mustAddTimed(t, lyrics, "00:12.00", "A")
	mustAddTimed(t, lyrics, "00:15.30", "B")

	want := "[al: X]\n[ti: Y]\n\n[00:12.00]A\n[00:15.30]B"
	if got := lyrics.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestLyrics_StringOmitsEmptyBlocks(t *testing.T) {
	empty := lrc.New()
	if got := empty.String(); got != "" {
		t.Errorf("empty document serialized to %q", got)
	}

	onlyTimed := lrc.New()
	mustAddTimed(t, onlyTimed, "00:12.00", "A")
	if got := onlyTimed.String(); got != "[00:12.00]A" {
		t.Errorf("got %q, want %q", got, "[00:12.00]A")
	}

	onlyMetadata := lrc.New()
	onlyMetadata.InsertMetadata(mustIDTag(t, "ti", "X"))
	if got := onlyMetadata.String(); got != "[ti: X]" {
		t.Errorf("got %q, want %q", got, "[ti: X]")
	}
}

func TestLyrics_RoundTrip(t *testing.T) {
	lyrics := lrc.New()
	lyrics.InsertMetadata(mustIDTag(t, "ti", "Let's Twist Again"))
	lyrics.InsertMetadata(mustIDTag(t, "al", "Hits Of The 60's - Vol. 2 – Oldies"))
	lyrics.InsertMetadata(mustIDTag(t, "length", "2:23"))
	mustAddTimed(t, lyrics, "00:12.00", "Naku Penda Piya-Naku Taka Piya-Mpenziwe")
	mustAddTimed(t, lyrics, "00:15.30", "Some more lyrics ...")
	mustAddTimed(t, lyrics, "00:15.30", "tie kept in order")
	if err := lyrics.AddLine("Plain line"); err != nil {
		t.Fatal(err)
	}

	back, err := lrc.ParseString(lyrics.String())
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if !lyrics.Equal(back) {
		t.Errorf("round trip changed the document:\noriginal:\n%s\nreparsed:\n%s", lyrics, back)
	}
}

func TestLyrics_FormatGroupedTimeTags(t *testing.T) {
	lyrics := lrc.New()
	mustAddTimed(t, lyrics, "00:12.00", "Chorus")
	mustAddTimed(t, lyrics, "00:13.00", "Chorus")
	mustAddTimed(t, lyrics, "00:20.00", "Verse")

	want := "[00:12.00][00:13.00]Chorus\n[00:20.00]Verse"
	if got := lyrics.Format(lrc.WithGroupedTimeTags()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	// Grouped output parses back to the same document.
	back, err := lrc.ParseString(lyrics.Format(lrc.WithGroupedTimeTags()))
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if !lyrics.Equal(back) {
		t.Error("grouped round trip changed the document")
	}

	// Default form stays expanded.
	if got := lyrics.String(); got != "[00:12.00]Chorus\n[00:13.00]Chorus\n[00:20.00]Verse" {
		t.Errorf("canonical form unexpectedly grouped: %q", got)
	}
}

func TestParseMany(t *testing.T) {
	inputs := []string{
		"[ti: One]\n\n[00:12.00]A",
		"[ti: Two]\n\n[00:15.30]B",
		"[00:20.00]C",
	}

	docs, err := lrc.ParseMany(context.Background(), inputs...)
	if err != nil {
		t.Fatalf("ParseMany failed: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}
	if tag, ok := docs[1].Tag("ti"); !ok || tag.Value() != "Two" {
		t.Errorf("docs[1] title = (%v, %v), want Two", tag, ok)
	}
	if docs[2].Len() != 1 {
		t.Errorf("docs[2].Len() = %d, want 1", docs[2].Len())
	}
}

func TestParseMany_Error(t *testing.T) {
	_, err := lrc.ParseMany(context.Background(), "[00:12.00]fine", "[99:99.00]broken")
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *lrc.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected wrapped *ParseError, got %T", err)
	}
}

func TestParseMany_Empty(t *testing.T) {
	docs, err := lrc.ParseMany(context.Background())
	if err != nil {
		t.Fatalf("ParseMany() failed: %v", err)
	}
	if docs != nil {
		t.Errorf("got %v, want nil", docs)
	}
}
