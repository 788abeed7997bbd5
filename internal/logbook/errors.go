package logbook

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is wrapped by LineError when a line cannot be read as an entry.
	ErrMalformedLine = errors.New("malformed line")
	// ErrOutOfOrder is wrapped by LineError when a timestamp is earlier than the line before it.
	ErrOutOfOrder = errors.New("entry out of order")
	// ErrInvalidText is returned before appending an entry whose description cannot be stored.
	ErrInvalidText = errors.New("invalid entry text")
)

// LineError points at the first line of the log that failed validation.
type LineError struct {
	Line   int
	Reason string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Reason)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
