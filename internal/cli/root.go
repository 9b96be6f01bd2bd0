// Package cli implements the duiker command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/spf13/cobra"

	"github.com/duiker-sh/duiker/internal/config"
	"github.com/duiker-sh/duiker/internal/migrate"
	"github.com/duiker-sh/duiker/internal/store"
)

// RootOptions holds global flags and the loaded configuration shared by
// all commands.
type RootOptions struct {
	Verbose bool

	Config *config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the duiker CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "duiker",
		Short: "Index your shell history in a full-text search database",
		Long: `Duiker indexes shell history into a local SQLite database with a
full-text search index, so any command you ever ran is one query away.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.Config = cfg

			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			}))

			if cfg.TimeFormat != "" {
				if err := checkTimeFormat(cfg.TimeFormat); err != nil {
					return fmt.Errorf("cannot parse HISTTIMEFORMAT (%s): %w\nhint: use only standard strftime format codes", cfg.TimeFormat, err)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewHeadCommand(opts))
	cmd.AddCommand(NewTailCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewMagicCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// checkTimeFormat verifies the configured format round-trips: render the
// current time with it, then parse the rendering back. Catches formats the
// boundary search could never match before any line is imported.
func checkTimeFormat(format string) error {
	layout, err := strftime.Layout(format)
	if err != nil {
		return err
	}
	rendered := strftime.Format(format, time.Now())
	if _, err := time.ParseInLocation(layout, rendered, time.Local); err != nil {
		return err
	}
	return nil
}

// OpenStore opens the history database and brings its schema up to date.
// Every command that touches history goes through here, so migrations
// always run before the first store operation.
func (o *RootOptions) OpenStore(ctx context.Context) (*store.Store, error) {
	if err := o.Config.EnsureDataDir(); err != nil {
		return nil, err
	}

	s, err := store.Open(o.Config.DatabasePath())
	if err != nil {
		return nil, err
	}

	runner, err := migrate.NewRunner(s.DB())
	if err != nil {
		s.Close()
		return nil, err
	}
	applied, err := migrate.Up(ctx, runner, store.Migrations())
	if err != nil {
		s.Close()
		return nil, err
	}
	for _, name := range applied {
		o.Logger.Info("applied migration", "name", name)
	}

	return s, nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
