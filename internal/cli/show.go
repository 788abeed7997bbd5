package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/faizmokh/idid/internal/clock"
	"github.com/faizmokh/idid/internal/dates"
	"github.com/faizmokh/idid/internal/files"
	"github.com/faizmokh/idid/internal/logbook"
	"github.com/faizmokh/idid/internal/logging"
)

const dateHelp = `DATE can be any of:
  - Days before today. 0 is today and 1 is yesterday; max 999.
  - Literal "today" or "yesterday".
  - YYYYMMDD or YYYY-MM-DD.
  - YYMMDD or YY-MM-DD.
  - MMDD or MM-DD, the most recent one within the last year.
  - Last weekday with an optional number of extra weeks:
    "mon" is last Monday and "mon1" goes back one more week.`

func newShowCommand(ctx context.Context, manager *files.Manager, clk clock.Clock) *cobra.Command {
	var (
		ranges  []string
		seconds bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "show [DATE...] [--range START,END]...",
		Short: "Show accomplishments for one or more days.",
		Long:  "show prints the entries of the selected days with the time spent on each.\n\n" + dateHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := dateFilter(clk, args, ranges)
			if err != nil {
				return err
			}

			reader := logbook.NewReader(manager).In(clk.Now().Location())
			records, err := reader.Select(ctx, filter)
			if err != nil {
				return err
			}
			if oldest, ok := filter.Oldest(); ok {
				newest, _ := filter.Newest()
				logging.Debugf("show %s: %d records\n", dates.NewRange(oldest, newest), len(records))
			}

			return writeRecords(cmd.OutOrStdout(), records, seconds, asJSON)
		},
	}

	cmd.Flags().StringSliceVarP(&ranges, "range", "r", nil, "Inclusive START,END range; repeat for more ranges")
	cmd.Flags().BoolVarP(&seconds, "seconds", "s", false, "Show duration in seconds")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per entry")

	return cmd
}

func newLastCommand(ctx context.Context, manager *files.Manager, clk clock.Clock) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last [N]",
		Short: "Show time since the last entry, or the last N entries.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := logbook.NewReader(manager)

			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return fmt.Errorf("invalid count %q", args[0])
				}
				entries, err := reader.LastN(ctx, n)
				if err != nil {
					return err
				}
				return writeEntries(cmd.OutOrStdout(), entries)
			}

			last, ok, err := reader.Last(ctx)
			if err != nil {
				return err
			}
			now := clk.Now()
			if !ok {
				logging.Debugln("last: log is empty")
				return nil
			}
			if dates.Of(last.Time.In(now.Location())) != dates.Of(now) {
				logging.Debugf("last: most recent entry is from %s\n", dates.Of(last.Time.In(now.Location())))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Elapsed: %s\n", shortHHMM(clock.Elapsed(last.Time, now)))
			return nil
		},
	}

	return cmd
}
