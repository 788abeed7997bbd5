package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/idid/internal/clock"
	"github.com/faizmokh/idid/internal/dates"
	"github.com/faizmokh/idid/internal/logbook"
)

// WarnAfter is the gap since the previous entry above which add prints a warning.
const WarnAfter = 12 * time.Hour

var praises = []string{
	"All right",
	"Brilliant",
	"Excellent",
	"Fantastic",
	"Good going",
	"Good job",
	"Great work",
	"Impressive",
	"Keep it up",
	"Kudos",
	"Nailed it",
	"Nice going",
	"Nice",
	"Outstanding",
	"Phenomenal",
	"Respect",
	"Sensational",
	"Simply superb",
	"Smashing",
	"Stellar",
	"Thank you",
	"Way to go",
	"Well done",
	"Wonderful",
}

var punctuation = []string{".", "!", "!!"}

// praise picks the encouragement printed after start and add. Tests replace it.
var praise = func() string {
	return praises[rand.Intn(len(praises))] + punctuation[rand.Intn(len(punctuation))]
}

// resolveWhen turns the -t flag into a timestamp. An empty flag means now.
func resolveWhen(clk clock.Clock, flag string) (time.Time, error) {
	now := clk.Now()
	if flag == "" {
		return now, nil
	}

	when, err := clock.ParseWhen(flag)
	if err != nil {
		return time.Time{}, err
	}
	return when.Apply(now), nil
}

func today(clk clock.Clock) dates.Date {
	return dates.Of(clk.Now())
}

// dateFilter builds the selection for show from individual DATE arguments and
// --range values, which are paired up as inclusive START END bounds. Nothing
// at all selects today.
func dateFilter(clk clock.Clock, args, rangeArgs []string) (dates.Filter, error) {
	now := today(clk)
	if len(args) == 0 && len(rangeArgs) == 0 {
		return dates.NewFilter([]dates.Date{now}, nil), nil
	}

	days, err := dates.ResolveAll(args, now)
	if err != nil {
		return dates.Filter{}, err
	}

	if len(rangeArgs)%2 != 0 {
		return dates.Filter{}, fmt.Errorf("--range needs START END pairs, got %d date(s)", len(rangeArgs))
	}
	bounds, err := dates.ResolveAll(rangeArgs, now)
	if err != nil {
		return dates.Filter{}, fmt.Errorf("range: %w", err)
	}
	ranges := make([]dates.Range, 0, len(bounds)/2)
	for i := 0; i < len(bounds); i += 2 {
		ranges = append(ranges, dates.NewRange(bounds[i], bounds[i+1]))
	}
	return dates.NewFilter(days, ranges), nil
}

// shortHHMM renders a duration as H:MM without padding the hours.
func shortHHMM(d time.Duration) string {
	d = d.Truncate(time.Minute)
	return fmt.Sprintf("%d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func printPraise(cmd *cobra.Command, prefix string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s.  %s\n", prefix, praise())
}

type showLine struct {
	Begin    string `json:"begin"`
	Duration string `json:"duration,omitempty"`
	Seconds  *int64 `json:"seconds,omitempty"`
	Text     string `json:"text"`
}

// writeRecords prints the selected records as TSV or as one JSON object per line.
func writeRecords(out io.Writer, records []logbook.Record, seconds, asJSON bool) error {
	var enc *json.Encoder
	if asJSON {
		enc = json.NewEncoder(out)
		enc.SetEscapeHTML(false)
	}

	for _, rec := range records {
		begin := rec.Time.Format(time.RFC3339)
		line := showLine{Begin: begin, Text: rec.Text}
		value := clock.FormatHHMM(rec.Duration())
		if seconds {
			secs := int64(rec.Duration() / time.Second)
			line.Seconds = &secs
			value = fmt.Sprintf("%d", secs)
		} else {
			line.Duration = value
		}

		if enc != nil {
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", begin, value, rec.Text); err != nil {
			return err
		}
	}
	return nil
}

func writeEntries(out io.Writer, entries []logbook.Entry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintln(out, logbook.FormatLine(entry)); err != nil {
			return err
		}
	}
	return nil
}
