package logbook

import (
	"time"

	"github.com/faizmokh/idid/internal/clock"
)

// StartMarker is the description written by "start". It opens a tracked day.
const StartMarker = "*~*~*--------------------"

// Entry is one line of the log: when something was done and what it was.
type Entry struct {
	Time time.Time
	Text string
}

// IsStart reports whether the entry is a day-start marker.
func (e Entry) IsStart() bool {
	return e.Text == StartMarker
}

// Record is an Entry as loaded from disk together with its predecessor in the full log.
type Record struct {
	Entry

	// Line is the 1-based line number in the backing file.
	Line int
	// Prev is the timestamp of the preceding entry; only meaningful when Chained is true.
	Prev    time.Time
	Chained bool
}

// Duration is the time spent on the entry: the gap since its predecessor.
// Start markers and the first entry of a day have none and report zero.
func (r Record) Duration() time.Duration {
	if !r.Chained {
		return 0
	}
	return clock.Elapsed(r.Prev, r.Time)
}
