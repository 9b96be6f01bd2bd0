package cli

import (
	"github.com/spf13/cobra"
)

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show commands from all time",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			commands, err := s.Log(cmd.Context())
			if err != nil {
				return err
			}
			return writeTSV(cmd.OutOrStdout(), rootOpts.Config, commands)
		},
	}
}
