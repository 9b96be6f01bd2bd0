package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/duiker-sh/duiker/internal/store"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print stats for the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			stats, err := s.Stats(cmd.Context())
			if err != nil {
				return err
			}

			var size int64
			if fi, err := os.Stat(rootOpts.Config.DatabasePath()); err == nil {
				size = fi.Size()
			}

			pretty := term.IsTerminal(int(os.Stdout.Fd()))
			return writeStats(cmd.OutOrStdout(), stats, size, pretty)
		},
	}
}

// writeStats renders the stats report. With pretty set (a terminal), the
// frequent-commands counts are right-aligned; otherwise the list is plain
// TSV for piping.
func writeStats(w io.Writer, stats store.Stats, size int64, pretty bool) error {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Database: %s\n", humanize.IBytes(uint64(size)))
	p.Fprintf(w, "Indexed Terms: %d\n", stats.IndexedTerms)
	p.Fprintf(w, "Unique Indexed Terms: %d\n", stats.UniqueIndexedTerms)
	p.Fprintf(w, "Commands: %d\n", stats.Commands)
	p.Fprintf(w, "Unique Commands: %d\n", stats.UniqueCommands)

	if len(stats.FrequentCommands) == 0 {
		return nil
	}

	fmt.Fprintln(w, "Frequent Commands:")
	padding := len(fmt.Sprintf("%d", stats.FrequentCommands[0].Count))
	for _, fc := range stats.FrequentCommands {
		if pretty {
			fmt.Fprintf(w, "\t%*d\t%s\n", padding, fc.Count, fc.Command)
		} else {
			fmt.Fprintf(w, "\t%d\t%s\n", fc.Count, fc.Command)
		}
	}
	return nil
}
