package cli

import (
	"github.com/spf13/cobra"
)

// NewHeadCommand creates the head command.
func NewHeadCommand(rootOpts *RootOptions) *cobra.Command {
	entries := 20

	cmd := &cobra.Command{
		Use:   "head",
		Short: "Show the first N commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			commands, err := s.Head(cmd.Context(), entries)
			if err != nil {
				return err
			}
			return writeTSV(cmd.OutOrStdout(), rootOpts.Config, commands)
		},
	}

	cmd.Flags().IntVarP(&entries, "entries", "n", 20, "number of commands to show")
	return cmd
}

// NewTailCommand creates the tail command.
func NewTailCommand(rootOpts *RootOptions) *cobra.Command {
	entries := 20

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show the most recent N commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			commands, err := s.Tail(cmd.Context(), entries)
			if err != nil {
				return err
			}
			return writeTSV(cmd.OutOrStdout(), rootOpts.Config, commands)
		},
	}

	cmd.Flags().IntVarP(&entries, "entries", "n", 20, "number of commands to show")
	return cmd
}
