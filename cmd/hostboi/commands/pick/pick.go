package pick

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Selector asks the user to choose one of names.
type Selector func(names []string) (string, error)

// Interactive is the terminal Selector, an arrow-key list with fuzzy
// filtering.
func Interactive(names []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(names).
		WithDefaultText(MsgPrompt).
		WithFilter(true).
		Show()
}

// NewCommand creates the pick command. RunE is set by the root command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "pick",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
	}
}
