package favorite

import (
	"github.com/arthur-debert/hostboi/pkg/commands/internal"
	"github.com/arthur-debert/hostboi/pkg/hosts"
	"github.com/arthur-debert/hostboi/pkg/logging"
	"github.com/arthur-debert/hostboi/pkg/types"
)

// SelectFavoriteOptions defines the options for the SelectFavorite command.
type SelectFavoriteOptions struct {
	internal.Target

	// Name is matched exactly against #FAV[<name>] tags.
	Name   string
	DryRun bool
}

// SelectFavorite activates the managed lines tagged with Name and comments
// out every other managed line. An unknown name suppresses the whole
// managed region.
func SelectFavorite(opts SelectFavoriteOptions) (*types.MutationResult, error) {
	log := logging.GetLogger("commands.favorite")
	log.Info().Str("favorite", opts.Name).Bool("dryRun", opts.DryRun).Msg("Selecting favorite")

	return internal.RunPipeline(internal.PipelineOptions{
		Target:    opts.Target,
		Operation: types.OperationFavorite,
		Argument:  opts.Name,
		DryRun:    opts.DryRun,
	}, hosts.FavoritePolicy(opts.Name))
}
