package favorites

import (
	"github.com/arthur-debert/hostboi/pkg/commands/internal"
	"github.com/arthur-debert/hostboi/pkg/hosts"
	"github.com/arthur-debert/hostboi/pkg/logging"
	"github.com/arthur-debert/hostboi/pkg/types"
)

// ListFavoritesOptions defines the options for the ListFavorites command.
type ListFavoritesOptions struct {
	internal.Target
}

// ListFavorites returns every favorite name found in the hosts file.
// It never writes to the file.
func ListFavorites(opts ListFavoritesOptions) (*types.FavoritesResult, error) {
	log := logging.GetLogger("commands.favorites")
	log.Debug().Str("command", "ListFavorites").Msg("Executing command")

	fsys, hostsPath, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	doc, err := hosts.Load(fsys, hostsPath)
	if err != nil {
		return nil, err
	}

	result := &types.FavoritesResult{
		HostsPath: hostsPath,
		Favorites: hosts.Favorites(doc),
	}

	log.Info().Str("command", "ListFavorites").Int("favoriteCount", len(result.Favorites)).Msg("Command finished")
	return result, nil
}
