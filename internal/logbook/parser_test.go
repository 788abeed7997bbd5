package logbook

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestParserReadsEntriesSequentially(t *testing.T) {
	input := "2024-04-01T08:00:00+05:00\t*~*~*--------------------\n" +
		"2024-04-01T12:00:00+05:00\tSample text\n" +
		"2024-04-01T12:15:00+05:00\tAnother entry"

	p := NewParser(strings.NewReader(input))

	first, err := p.Next()
	if err != nil {
		t.Fatalf("Next first call: %v", err)
	}
	if !first.IsStart() {
		t.Fatalf("first entry should be a start marker, got %q", first.Text)
	}
	wantTime := time.Date(2024, time.April, 1, 3, 0, 0, 0, time.UTC)
	if !first.Time.Equal(wantTime) {
		t.Fatalf("first.Time = %s, want %s", first.Time, wantTime)
	}
	if _, offset := first.Time.Zone(); offset != 5*3600 {
		t.Fatalf("first.Time offset = %d, want the recorded +05:00", offset)
	}

	second, err := p.Next()
	if err != nil {
		t.Fatalf("Next second call: %v", err)
	}
	if second.Text != "Sample text" {
		t.Fatalf("second.Text = %q, want %q", second.Text, "Sample text")
	}
	if p.Line() != 2 {
		t.Fatalf("Line() = %d, want 2", p.Line())
	}

	third, err := p.Next()
	if err != nil {
		t.Fatalf("Next third call: %v", err)
	}
	if third.Text != "Another entry" {
		t.Fatalf("third.Text = %q, want %q", third.Text, "Another entry")
	}

	if _, err := p.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next after last line = %v, want io.EOF", err)
	}
}

func TestParserReportsFirstMalformedLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"blank line", "2024-04-01T08:00:00Z\tok\n\n2024-04-01T09:00:00Z\tok\n", 2},
		{"missing tab", "2024-04-01T08:00:00Z\tok\n2024-04-01T09:00:00Z ok\n", 2},
		{"extra field", "2024-04-01T08:00:00Z\tone\ttwo\n", 1},
		{"bad timestamp", "2024-04-01T08:00:00Z\tok\n2024-04-01 09:00\tok\n", 2},
		{"empty description", "2024-04-01T08:00:00Z\tok\n2024-04-01T09:00:00Z\t   \n", 2},
		{"comment line", "# notes\n2024-04-01T09:00:00Z\tok\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(strings.NewReader(tt.input))
			var err error
			for err == nil {
				_, err = p.Next()
			}

			var lineErr *LineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("error = %v, want *LineError", err)
			}
			if !errors.Is(err, ErrMalformedLine) {
				t.Fatalf("error = %v, want ErrMalformedLine", err)
			}
			if lineErr.Line != tt.line {
				t.Fatalf("line = %d, want %d", lineErr.Line, tt.line)
			}
		})
	}
}

func TestParserRejectsDecreasingTimestamps(t *testing.T) {
	input := "2024-04-01T08:00:00Z\tfirst\n" +
		"2024-04-01T09:00:00Z\tsecond\n" +
		"2024-04-01T09:00:00Z\ttie is fine\n" +
		"2024-04-01T08:30:00Z\tgoes backwards\n"

	p := NewParser(strings.NewReader(input))
	var err error
	for err == nil {
		_, err = p.Next()
	}

	if !errors.Is(err, ErrOutOfOrder) {
		t.Fatalf("error = %v, want ErrOutOfOrder", err)
	}
	var lineErr *LineError
	if !errors.As(err, &lineErr) || lineErr.Line != 4 {
		t.Fatalf("error = %v, want line 4", err)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Fatalf("message %q should name the line", err.Error())
	}
}

func TestParserComparesInstantsNotWallClock(t *testing.T) {
	// 10:00+02:00 is 08:00Z, so the second line is later even though its wall clock is earlier.
	input := "2024-04-01T10:00:00+02:00\tfirst\n2024-04-01T09:00:00Z\tsecond\n"

	p := NewParser(strings.NewReader(input))
	for i := 0; i < 2; i++ {
		if _, err := p.Next(); err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
	}
}

func TestParseLineAcceptsCRLF(t *testing.T) {
	entry, err := ParseLine("2024-04-01T08:00:00Z\twindows line\r")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if entry.Text != "windows line" {
		t.Fatalf("Text = %q", entry.Text)
	}
}

func TestFormatLine(t *testing.T) {
	entry := Entry{
		Time: time.Date(2024, time.April, 1, 12, 15, 30, 0, time.FixedZone("", 5*3600)),
		Text: "Wrote tests",
	}
	want := "2024-04-01T12:15:30+05:00\tWrote tests"
	if got := FormatLine(entry); got != want {
		t.Fatalf("FormatLine() = %q, want %q", got, want)
	}

	parsed, err := ParseLine(want)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if !parsed.Time.Equal(entry.Time) || parsed.Text != entry.Text {
		t.Fatalf("ParseLine(FormatLine()) = %#v, want %#v", parsed, entry)
	}
}
