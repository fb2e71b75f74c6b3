package apply

import (
	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/types"
	"github.com/spf13/cobra"
)

// Flag names
const (
	FlagSwap     = "swap"
	FlagFavorite = "favorite"
)

// Request is a validated apply invocation: exactly one operation.
type Request struct {
	Operation string
	BoxNumber int
	Favorite  string
}

// NewCommand creates the apply command. RunE is set by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apply (--swap N | --favorite NAME)",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
	}

	cmd.Flags().IntP(FlagSwap, "s", 0, MsgFlagSwap)
	cmd.Flags().StringP(FlagFavorite, "f", "", MsgFlagFavorite)

	return cmd
}

// FromFlags reads and validates the apply flags of cmd.
func FromFlags(cmd *cobra.Command) (Request, error) {
	box, err := cmd.Flags().GetInt(FlagSwap)
	if err != nil {
		return Request{}, errors.Wrap(err, errors.ErrInvalidArgument, "invalid --swap value")
	}
	name, err := cmd.Flags().GetString(FlagFavorite)
	if err != nil {
		return Request{}, errors.Wrap(err, errors.ErrInvalidArgument, "invalid --favorite value")
	}
	return Validate(cmd.Flags().Changed(FlagSwap), box, cmd.Flags().Changed(FlagFavorite), name)
}

// Validate enforces that exactly one of swap and favorite was given. The
// box number itself is checked by the swap operation.
func Validate(swapSet bool, box int, favoriteSet bool, name string) (Request, error) {
	switch {
	case swapSet && favoriteSet:
		return Request{}, errors.New(errors.ErrInvalidArgument, MsgErrBoth)
	case swapSet:
		return Request{Operation: types.OperationSwap, BoxNumber: box}, nil
	case favoriteSet:
		return Request{Operation: types.OperationFavorite, Favorite: name}, nil
	default:
		return Request{}, errors.New(errors.ErrInvalidArgument, MsgErrNeither)
	}
}
