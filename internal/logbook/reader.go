package logbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/faizmokh/idid/internal/dates"
	"github.com/faizmokh/idid/internal/files"
	"github.com/faizmokh/idid/internal/logging"
)

// Reader loads and validates the log file located by a files.Manager.
type Reader struct {
	manager *files.Manager
	loc     *time.Location
}

// NewReader wires a reader using the shared files.Manager. Calendar days are taken in time.Local.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager, loc: time.Local}
}

// In returns a copy of the reader that decides calendar days in loc.
func (r *Reader) In(loc *time.Location) *Reader {
	clone := *r
	clone.loc = loc
	return &clone
}

// Location returns the zone used to decide which day an entry belongs to.
func (r *Reader) Location() *time.Location {
	return r.loc
}

// Load reads every entry in file order and links each one to its predecessor.
// A missing file is an empty log.
func (r *Reader) Load(ctx context.Context) ([]Record, error) {
	var records []Record
	err := r.scan(ctx, func(entry Entry, line int) {
		rec := Record{Entry: entry, Line: line}
		if n := len(records); n > 0 && !entry.IsStart() {
			prev := records[n-1].Time
			if r.sameDay(prev, entry.Time) {
				rec.Prev = prev
				rec.Chained = true
			}
		}
		records = append(records, rec)
	})
	if err != nil {
		return nil, err
	}
	logging.Debugf("loaded %d records from %s\n", len(records), r.manager.Path())
	return records, nil
}

// Select loads the log and keeps the records on the days matched by filter.
func (r *Reader) Select(ctx context.Context, filter dates.Filter) ([]Record, error) {
	records, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Select(records, filter, r.loc), nil
}

// LastN returns the final n entries, most recent first. Durations are not computed.
func (r *Reader) LastN(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	// Grow on demand; n may be far larger than the log.
	ring := make([]Entry, 0, min(n, 256))
	next := 0
	err := r.scan(ctx, func(entry Entry, _ int) {
		if len(ring) < n {
			ring = append(ring, entry)
			return
		}
		ring[next] = entry
		next = (next + 1) % n
	})
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(ring))
	for i := len(ring) - 1; i >= 0; i-- {
		out = append(out, ring[(next+i)%len(ring)])
	}
	return out, nil
}

// Last returns the most recent entry. ok is false when the log is empty.
func (r *Reader) Last(ctx context.Context) (entry Entry, ok bool, err error) {
	last, err := r.LastN(ctx, 1)
	if err != nil || len(last) == 0 {
		return Entry{}, false, err
	}
	return last[0], true, nil
}

func (r *Reader) scan(ctx context.Context, fn func(Entry, int)) error {
	if r == nil || r.manager == nil {
		return errors.New("reader not initialized with file manager")
	}

	file, err := os.Open(r.manager.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	parser := NewParser(file)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry, err := parser.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		fn(entry, parser.Line())
	}
}

func (r *Reader) sameDay(a, b time.Time) bool {
	return dates.Of(a.In(r.loc)) == dates.Of(b.In(r.loc))
}
