package hostboi

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arthur-debert/hostboi/cmd/hostboi/commands/apply"
	"github.com/arthur-debert/hostboi/cmd/hostboi/commands/genconfig"
	"github.com/arthur-debert/hostboi/cmd/hostboi/commands/pick"
	"github.com/arthur-debert/hostboi/internal/version"
	"github.com/arthur-debert/hostboi/pkg/commands"
	"github.com/arthur-debert/hostboi/pkg/config"
	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/filesystem"
	"github.com/arthur-debert/hostboi/pkg/paths"
	"github.com/arthur-debert/hostboi/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// favoriteNamesCompletion completes favorite names from the hosts file.
// Completion runs without PersistentPreRunE, so it loads the config itself.
func (a *app) favoriteNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	result, err := commands.ListFavorites(commands.ListFavoritesOptions{
		Target: commands.Target{HostsPath: cfg.Hosts.Path},
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return result.Favorites, cobra.ShellCompDirectiveNoFileComp
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.ListFavorites(commands.ListFavoritesOptions{Target: a.target()})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func (a *app) newSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "swap <box>",
		Short:   MsgSwapShort,
		Long:    MsgSwapLong,
		Example: MsgSwapExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Newf(errors.ErrInvalidArgument, MsgErrBoxNumber, args[0])
			}
			return a.runSwap(cmd, box)
		},
	}
	cmd.SetFlagErrorFunc(negativeBoxError)
	return cmd
}

// negativeBoxError reports 'swap -3' as a bad box number. The flag parser
// sees the negative number as an unknown shorthand before RunE runs.
func negativeBoxError(cmd *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) || len(msg) <= len(prefix) || !unicode.IsDigit(rune(msg[len(prefix)])) {
		return err
	}
	arg := msg
	if i := strings.LastIndex(msg, " in "); i >= 0 {
		arg = msg[i+len(" in "):]
	}
	return errors.Newf(errors.ErrInvalidArgument, MsgErrBoxTooLow, arg)
}

func (a *app) runSwap(cmd *cobra.Command, box int) error {
	log.Info().Int("box", box).Bool("dry_run", a.dryRun).Msg("Swapping box")

	result, err := commands.Swap(commands.SwapOptions{
		Target:    a.target(),
		BoxNumber: box,
		DryRun:    a.dryRun,
	})
	if err != nil {
		return err
	}
	return a.render(cmd, result)
}

func (a *app) newFavCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "fav <name>",
		Aliases:           []string{"favorite"},
		Short:             MsgFavShort,
		Long:              MsgFavLong,
		Example:           MsgFavExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.favoriteNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFavorite(cmd, args[0])
		},
	}
}

func (a *app) runFavorite(cmd *cobra.Command, name string) error {
	log.Info().Str("favorite", name).Bool("dry_run", a.dryRun).Msg("Selecting favorite")

	result, err := commands.SelectFavorite(commands.SelectFavoriteOptions{
		Target: a.target(),
		Name:   name,
		DryRun: a.dryRun,
	})
	if err != nil {
		return err
	}
	return a.render(cmd, result)
}

func (a *app) newApplyCmd() *cobra.Command {
	cmd := apply.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		req, err := apply.FromFlags(cmd)
		if err != nil {
			return err
		}
		if req.Operation == types.OperationSwap {
			return a.runSwap(cmd, req.BoxNumber)
		}
		return a.runFavorite(cmd, req.Favorite)
	}
	_ = cmd.RegisterFlagCompletionFunc(apply.FlagFavorite, a.favoriteNamesCompletion)
	return cmd
}

func (a *app) newPickCmd() *cobra.Command {
	cmd := pick.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		listed, err := commands.ListFavorites(commands.ListFavoritesOptions{Target: a.target()})
		if err != nil {
			return err
		}
		if len(listed.Favorites) == 0 {
			return errors.Newf(errors.ErrInvalidArgument, MsgErrNoFavorites, listed.HostsPath)
		}

		name, err := favoriteSelector(listed.Favorites)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "favorite selection failed")
		}
		return a.runFavorite(cmd, name)
	}
	return cmd
}

func (a *app) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "restore",
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Restore(commands.RestoreOptions{
				Target: a.target(),
				DryRun: a.dryRun,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func (a *app) newGenConfigCmd() *cobra.Command {
	cmd := genconfig.NewCommand()
	cmd.Annotations = map[string]string{annotationConfigOptional: "true"}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool(genconfig.FlagWrite)
		if !write {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
			return err
		}

		force, _ := cmd.Flags().GetBool(genconfig.FlagForce)
		path := a.configFile
		if path == "" {
			path = paths.ConfigFilePath()
		}
		if err := config.WriteConfigFile(filesystem.NewOS(), path, force); err != nil {
			return err
		}
		return a.message(cmd, fmt.Sprintf(MsgConfigWritten, path))
	}
	return cmd
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			source := a.configFile
			if source == "" {
				source = paths.ConfigFilePath()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigSource+"\n%s", source, text)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
