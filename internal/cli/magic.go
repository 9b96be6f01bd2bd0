package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// magicSnippet is the shell function users add to PROMPT_COMMAND so every
// command is indexed the moment its prompt returns. HISTIGNORE is bumped
// around the import to keep `history` invocations out of the index.
const magicSnippet = `__duiker_import() {
    local old_histignore=$HISTIGNORE
    HISTIGNORE='history*'
    history 1 | duiker import --quiet -
    HISTIGNORE=$old_histignore
}`

// NewMagicCommand creates the magic command.
func NewMagicCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "magic",
		Short: "Print a shell function that imports the last command",
		Long: `Print a shell function that imports the last command into duiker.

Add the function to your $PROMPT_COMMAND:

  ` + "`duiker magic`" + `

  __prompt() {
      history -a
      __duiker_import
      PS1="\u@\h:\w$ "
  }

  PROMPT_COMMAND=__prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), magicSnippet)
			return err
		},
	}
}
