package cli

import (
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <expression>",
		Short: "Search for a command in the history database",
		Long: `Search for a command in the history database.

Use any SQLite full-text search (FTS) query:

  https://sqlite.org/fts3.html#full_text_index_queries

Examples:
  duiker search 'git'
  duiker search 'git NOT push'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			commands, err := s.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeTSV(cmd.OutOrStdout(), rootOpts.Config, commands)
		},
	}
}
