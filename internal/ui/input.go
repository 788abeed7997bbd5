package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/faizmokh/idid/internal/clock"
	"github.com/faizmokh/idid/internal/logbook"
)

// parseInputLine reads "text" or "@WHEN text" typed into the add prompt.
// WHEN takes the same forms as the -t flag.
func parseInputLine(input string, now time.Time) (logbook.Entry, error) {
	entry := logbook.Entry{Time: now, Text: strings.TrimSpace(input)}
	if !strings.HasPrefix(entry.Text, "@") {
		return entry, nil
	}

	token, rest, _ := strings.Cut(entry.Text, " ")
	when, err := clock.ParseWhen(token[1:])
	if err != nil {
		return logbook.Entry{}, fmt.Errorf("invalid time %q: %w", token[1:], err)
	}
	entry.Time = when.Apply(now)
	entry.Text = strings.TrimSpace(rest)
	return entry, nil
}
