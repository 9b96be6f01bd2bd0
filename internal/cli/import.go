package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/duiker-sh/duiker/internal/importer"
	"github.com/duiker-sh/duiker/internal/metrics"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Quiet  bool
	Strict bool
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <histfile>",
		Short: "Import history output into the database",
		Long: `Import shell history output into the database.

Import from standard input:

  history | duiker import -

Import from a saved history file:

  history > history_file
  duiker import history_file

Malformed lines are logged and skipped; pass --strict to abort on the
first one instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "do not print imported commands")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "abort the batch on the first malformed line")

	return cmd
}

func runImport(cmd *cobra.Command, opts *ImportOptions, histfile string) error {
	ctx := cmd.Context()

	var input io.Reader
	if histfile == "-" {
		input = cmd.InOrStdin()
	} else {
		f, err := os.Open(histfile)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	s, err := opts.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	logger := opts.Logger
	if opts.Quiet {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}

	im := importer.New(importer.Params{
		Store:      s,
		TimeFormat: opts.Config.TimeFormat,
		Strict:     opts.Strict,
		Logger:     logger,
		Metrics:    metrics.NewCollector(),
	})

	result, err := im.ImportReader(ctx, input)
	if err != nil {
		return err
	}

	logger.Debug("import finished",
		"batch", result.BatchID,
		"imported", result.Imported,
		"malformed", result.Malformed,
	)
	return nil
}
