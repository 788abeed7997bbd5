package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/idid/internal/clock"
	"github.com/faizmokh/idid/internal/files"
	"github.com/faizmokh/idid/internal/ui"
	"github.com/faizmokh/idid/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and the day browser.
// A --tsv flag replaces the manager's path before any subcommand runs; a manager
// without a path gets the default location only when no --tsv is given.
func NewRootCommand(ctx context.Context, manager *files.Manager, clk clock.Clock) *cobra.Command {
	var tsvFlag string

	cmd := &cobra.Command{
		Use:     "idid",
		Short:   "Keep a log of what you did and how long it took.",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if tsvFlag == "" && manager.Path() != "" {
				return nil
			}
			m, err := files.NewManager(tsvFlag)
			if err != nil {
				return err
			}
			*manager = *m
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, manager, clk)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&tsvFlag, "tsv", "", "TSV file instead of $"+files.PathEnvVar+" or $XDG_DATA_HOME/idid/idid.tsv")

	cmd.AddCommand(
		newStartCommand(ctx, manager, clk),
		newAddCommand(ctx, manager, clk),
		newLastCommand(ctx, manager, clk),
		newShowCommand(ctx, manager, clk),
		newEditCommand(ctx, manager),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "idid %s\n", version.Info())
			return nil
		},
	}
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx, &files.Manager{}, clock.System{})
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/idid/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
