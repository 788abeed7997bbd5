package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/idid/internal/clock"
	"github.com/faizmokh/idid/internal/files"
	"github.com/faizmokh/idid/internal/logbook"
)

const whenUsage = `WHEN minutes ago or a clock time, e.g. "15", "8am", "13:15", "4:55pm"`

func newStartCommand(ctx context.Context, manager *files.Manager, clk clock.Clock) *cobra.Command {
	var (
		whenFlag string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Mark the start of a working day.",
		Long:  "start appends a day-start marker. The first entry after it is timed from the marker.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := resolveWhen(clk, whenFlag)
			if err != nil {
				return err
			}

			writer := logbook.NewWriter(manager)
			if err := writer.Append(ctx, logbook.Entry{Time: when, Text: logbook.StartMarker}); err != nil {
				return err
			}

			if !quiet {
				printPraise(cmd, "Starting at "+when.Format("03:04 PM"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&whenFlag, "time", "t", "", whenUsage)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet response")

	return cmd
}

func newAddCommand(ctx context.Context, manager *files.Manager, clk clock.Clock) *cobra.Command {
	var (
		whenFlag string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "add [-t WHEN] text...",
		Short: "Record something you just finished.",
		Long:  "add appends an entry. Its duration is the time since the previous entry of the same day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("text is required")
			}

			when, err := resolveWhen(clk, whenFlag)
			if err != nil {
				return err
			}

			last, hasLast, err := logbook.NewReader(manager).Last(ctx)
			var lineErr *logbook.LineError
			switch {
			case errors.As(err, &lineErr):
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (run \"idid edit\" to fix)\n", err)
				hasLast = false
			case err != nil:
				return err
			}

			entry := logbook.Entry{Time: when, Text: text}
			writer := logbook.NewWriter(manager)
			if err := writer.Append(ctx, entry); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !hasLast {
				if !quiet {
					printPraise(cmd, when.Format("Mon 03:04 PM"))
				}
				return nil
			}

			elapsed := clock.Elapsed(last.Time, when)
			if elapsed > WarnAfter {
				fmt.Fprintf(out, "WARNING: elapsed time from last is %s\n", clock.FormatHHMM(elapsed))
				return nil
			}
			if !quiet {
				printPraise(cmd, fmt.Sprintf("%s for %s", when.Format("Mon 03:04 PM"), shortHHMM(elapsed)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&whenFlag, "time", "t", "", whenUsage)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet response")

	return cmd
}
