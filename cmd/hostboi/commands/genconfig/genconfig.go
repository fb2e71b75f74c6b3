package genconfig

import (
	"github.com/spf13/cobra"
)

// Flag names
const (
	FlagWrite = "write"
	FlagForce = "force"
)

// NewCommand creates the gen-config command. RunE is set by the root
// command, which owns config loading.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
	}

	cmd.Flags().BoolP(FlagWrite, "w", false, MsgFlagWrite)
	cmd.Flags().Bool(FlagForce, false, MsgFlagForce)

	return cmd
}
