package cli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/faizmokh/idid/internal/editor"
	"github.com/faizmokh/idid/internal/files"
	"github.com/faizmokh/idid/internal/logbook"
	"github.com/faizmokh/idid/internal/logging"
)

// runEditor hands the terminal to the editor. Tests replace it.
var runEditor = func(c *exec.Cmd) error {
	return c.Run()
}

func newEditCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the log in $VISUAL or $EDITOR.",
		Long:  "edit opens the log at its last line, or at the first line that fails validation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := faultyLine(ctx, manager)
			if err != nil {
				return err
			}

			path, err := manager.EnsureFile()
			if err != nil {
				return err
			}

			c := editor.Command(path, line)
			c.Stdin = cmd.InOrStdin()
			c.Stdout = cmd.OutOrStdout()
			c.Stderr = cmd.ErrOrStderr()
			logging.Debugf("edit: running %q\n", c.Args)

			if err := runEditor(c); err != nil {
				return fmt.Errorf("run editor %s: %w", c.Args[0], err)
			}
			return nil
		},
	}

	return cmd
}

// faultyLine reports the first line that fails validation, or editor.EndOfFile
// when the whole log loads.
func faultyLine(ctx context.Context, manager *files.Manager) (int, error) {
	_, err := logbook.NewReader(manager).Load(ctx)
	if err == nil {
		return editor.EndOfFile, nil
	}

	var lineErr *logbook.LineError
	if errors.As(err, &lineErr) {
		logging.Debugf("edit: %v\n", err)
		return lineErr.Line, nil
	}
	return 0, err
}
