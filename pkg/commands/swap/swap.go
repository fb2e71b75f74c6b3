package swap

import (
	"strconv"

	"github.com/arthur-debert/hostboi/pkg/commands/internal"
	"github.com/arthur-debert/hostboi/pkg/hosts"
	"github.com/arthur-debert/hostboi/pkg/logging"
	"github.com/arthur-debert/hostboi/pkg/types"
)

// SwapOptions defines the options for the Swap command.
type SwapOptions struct {
	internal.Target

	// BoxNumber becomes the third octet of every swap-tagged address.
	BoxNumber int
	DryRun    bool
}

// Swap points the swap-tagged lines of the managed region at BoxNumber and
// comments out every other managed line.
func Swap(opts SwapOptions) (*types.MutationResult, error) {
	log := logging.GetLogger("commands.swap")
	log.Info().Int("box", opts.BoxNumber).Bool("dryRun", opts.DryRun).Msg("Swapping hosts to box")

	// Validate before the snapshot so a bad argument leaves no trace.
	policy, err := hosts.SwapPolicy(opts.BoxNumber)
	if err != nil {
		return nil, err
	}

	return internal.RunPipeline(internal.PipelineOptions{
		Target:    opts.Target,
		Operation: types.OperationSwap,
		Argument:  strconv.Itoa(opts.BoxNumber),
		DryRun:    opts.DryRun,
	}, policy)
}
