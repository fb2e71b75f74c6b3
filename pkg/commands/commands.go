// Package commands provides high-level command implementations for hostboi.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the hosts rewrite core.
//
// Each command is implemented in its own subdirectory:
//   - favorites/ - ListFavorites command
//   - swap/      - Swap command
//   - favorite/  - SelectFavorite command
//   - restore/   - Restore command
//   - internal/  - Shared snapshot/rewrite/restore pipeline
//
// This file re-exports the command functions so callers only need one import.
package commands

import (
	"github.com/arthur-debert/hostboi/pkg/commands/favorite"
	"github.com/arthur-debert/hostboi/pkg/commands/favorites"
	"github.com/arthur-debert/hostboi/pkg/commands/internal"
	"github.com/arthur-debert/hostboi/pkg/commands/restore"
	"github.com/arthur-debert/hostboi/pkg/commands/swap"
	"github.com/arthur-debert/hostboi/pkg/types"
)

// Target selects the filesystem and hosts file a command works on.
// The zero value means the OS filesystem and the OS hosts file.
type Target = internal.Target

type ListFavoritesOptions = favorites.ListFavoritesOptions

// ListFavorites returns the distinct favorite names of the hosts file.
func ListFavorites(opts ListFavoritesOptions) (*types.FavoritesResult, error) {
	return favorites.ListFavorites(opts)
}

type SwapOptions = swap.SwapOptions

// Swap retargets the swap-tagged lines to a box number.
func Swap(opts SwapOptions) (*types.MutationResult, error) {
	return swap.Swap(opts)
}

type SelectFavoriteOptions = favorite.SelectFavoriteOptions

// SelectFavorite activates one favorite.
func SelectFavorite(opts SelectFavoriteOptions) (*types.MutationResult, error) {
	return favorite.SelectFavorite(opts)
}

type RestoreOptions = restore.RestoreOptions

// Restore copies the last backup over the hosts file.
func Restore(opts RestoreOptions) (*types.MutationResult, error) {
	return restore.Restore(opts)
}
