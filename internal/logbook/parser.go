package logbook

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

const maxLineBytes = 1 << 20

// Parser reads TSV log lines one entry at a time, validating each line and the order between them.
type Parser struct {
	scanner *bufio.Scanner
	line    int
	last    time.Time
	seen    bool
}

// NewParser returns a parser reading from r.
func NewParser(r io.Reader) *Parser {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Parser{scanner: scanner}
}

// Line returns the number of the line most recently consumed.
func (p *Parser) Line() int {
	return p.line
}

// Next returns the next entry, io.EOF at the end of input, or a *LineError for the first bad line.
func (p *Parser) Next() (Entry, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return Entry{}, &LineError{Line: p.line + 1, Reason: err.Error(), Err: ErrMalformedLine}
		}
		return Entry{}, io.EOF
	}
	p.line++

	entry, err := ParseLine(p.scanner.Text())
	if err != nil {
		return Entry{}, &LineError{Line: p.line, Reason: err.Error(), Err: ErrMalformedLine}
	}

	if p.seen && entry.Time.Before(p.last) {
		return Entry{}, &LineError{
			Line:   p.line,
			Reason: fmt.Sprintf("%s is earlier than %s", entry.Time.Format(time.RFC3339), p.last.Format(time.RFC3339)),
			Err:    ErrOutOfOrder,
		}
	}
	p.last = entry.Time
	p.seen = true

	return entry, nil
}

// ParseLine splits "<RFC 3339 timestamp>\t<description>" into an Entry.
func ParseLine(line string) (Entry, error) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return Entry{}, fmt.Errorf("blank line")
	}

	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return Entry{}, fmt.Errorf("expected 2 tab-separated fields, found %d", len(fields))
	}

	when, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("parse timestamp %q: %w", fields[0], err)
	}

	text := strings.TrimSpace(fields[1])
	if text == "" {
		return Entry{}, fmt.Errorf("missing description")
	}

	return Entry{Time: when, Text: text}, nil
}

// FormatLine renders an entry as it is stored on disk, without the trailing newline.
func FormatLine(entry Entry) string {
	return entry.Time.Format(time.RFC3339) + "\t" + entry.Text
}
