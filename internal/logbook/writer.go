package logbook

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/faizmokh/idid/internal/files"
	"github.com/faizmokh/idid/internal/logging"
)

// Writer appends entries to the log file located by a files.Manager.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires the dependencies required to append to the log file.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Append validates entry and writes it as a single line at the end of the log.
// Nothing is written when validation fails. An entry older than the last line is still written;
// the next load reports it.
func (w *Writer) Append(ctx context.Context, entry Entry) error {
	if w == nil || w.manager == nil {
		return fmt.Errorf("writer not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := normalizeEntry(entry)
	if err != nil {
		return err
	}

	path, err := w.manager.EnsureFile()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	line := FormatLine(entry) + "\n"
	missing, err := missingFinalNewline(file)
	if err != nil {
		return err
	}
	if missing {
		line = "\n" + line
	}

	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	logging.Debugf("appended %q to %s\n", strings.TrimSpace(line), path)
	return file.Close()
}

// ValidateText reports whether text can be stored as an entry description.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: description is empty", ErrInvalidText)
	}
	if strings.ContainsAny(text, "\t\r\n") {
		return fmt.Errorf("%w: description must not contain tabs or line breaks", ErrInvalidText)
	}
	return nil
}

func normalizeEntry(entry Entry) (Entry, error) {
	if err := ValidateText(entry.Text); err != nil {
		return Entry{}, err
	}
	if entry.Time.IsZero() {
		return Entry{}, fmt.Errorf("%w: missing timestamp", ErrInvalidText)
	}
	entry.Text = strings.TrimSpace(entry.Text)
	entry.Time = entry.Time.Truncate(time.Second)
	return entry, nil
}

func missingFinalNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, fmt.Errorf("stat log: %w", err)
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return false, fmt.Errorf("read log: %w", err)
	}
	return last[0] != '\n', nil
}
