package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the duiker release version.
const Version = "0.2.0"

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "duiker %s\n", Version)
			return err
		},
	}
}
