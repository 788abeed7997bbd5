package dates

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedDate is returned when a token matches none of the date forms.
	ErrUnrecognizedDate = errors.New("unrecognized date expression")
	// ErrDateOutOfRange is returned for day counts of 1000 or more.
	ErrDateOutOfRange = errors.New("date out of range")
	// ErrAmbiguousDate is returned when a yearless MM-DD has no occurrence inside the lookback window.
	ErrAmbiguousDate = errors.New("ambiguous date without year")
	// ErrInvalidCalendarDate is returned when the month or day does not exist.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

// ExprError ties a resolution failure to the token that caused it.
type ExprError struct {
	Expr   string
	Reason string
	Err    error
}

func (e *ExprError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid date %q: %v", e.Expr, e.Err)
	}
	return fmt.Sprintf("invalid date %q: %v: %s", e.Expr, e.Err, e.Reason)
}

func (e *ExprError) Unwrap() error {
	return e.Err
}

func exprError(expr string, err error, format string, args ...any) error {
	return &ExprError{Expr: expr, Err: err, Reason: fmt.Sprintf(format, args...)}
}
