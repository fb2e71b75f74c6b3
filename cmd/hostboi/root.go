package hostboi

import (
	"os"

	"github.com/arthur-debert/hostboi/cmd/hostboi/commands/pick"
	helptopics "github.com/arthur-debert/hostboi/cmd/hostboi/topics"
	"github.com/arthur-debert/hostboi/internal/version"
	"github.com/arthur-debert/hostboi/pkg/cobrax/topics"
	"github.com/arthur-debert/hostboi/pkg/commands"
	"github.com/arthur-debert/hostboi/pkg/config"
	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/logging"
	"github.com/arthur-debert/hostboi/pkg/paths"
	"github.com/arthur-debert/hostboi/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// annotationConfigOptional marks commands that accept a --config path
// that does not exist yet.
const annotationConfigOptional = "hostboi/config-optional"

// favoriteSelector backs the pick command. Tests replace it.
var favoriteSelector pick.Selector = pick.Interactive

// app holds the global flag values and the configuration they resolve to.
type app struct {
	verbosity  int
	dryRun     bool
	hostsPath  string
	format     string
	noColor    bool
	configFile string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "hostboi",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidArgument, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVarP(&a.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	pf.StringVar(&a.hostsPath, "hosts", "", MsgFlagHosts)
	pf.StringVar(&a.format, "format", ui.FormatAuto.String(), MsgFlagFormat)
	pf.BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	pf.StringVar(&a.configFile, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newSwapCmd())
	rootCmd.AddCommand(a.newFavCmd())
	rootCmd.AddCommand(a.newApplyCmd())
	rootCmd.AddCommand(a.newPickCmd())
	rootCmd.AddCommand(a.newRestoreCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic help: 'hostboi help grammar'
	if _, err := topics.Initialize(rootCmd, helptopics.FS, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setup runs before every command: logging first, then configuration,
// then the log file if the configuration asks for one.
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLogger(a.verbosity, "")

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Logging.File {
		logging.SetupLogger(a.verbosity, paths.LogFilePath())
	}

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

// loadConfig layers the flags the user actually set over the other
// configuration sources.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	overrides := map[string]interface{}{}

	if flags.Changed("hosts") {
		overrides["hosts.path"] = a.hostsPath
	}
	if flags.Changed("format") {
		if _, err := ui.ParseFormat(a.format); err != nil {
			return nil, err
		}
		overrides["output.format"] = a.format
	}
	if flags.Changed("no-color") {
		overrides["output.no_color"] = a.noColor
	}

	configFile := a.configFile
	if configFile != "" && cmd.Annotations[annotationConfigOptional] != "" {
		if _, err := os.Stat(configFile); err != nil {
			configFile = ""
		}
	}

	return config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  overrides,
	})
}

func (a *app) target() commands.Target {
	return commands.Target{HostsPath: a.cfg.Hosts.Path}
}

// render writes a command result in the configured format.
func (a *app) render(cmd *cobra.Command, result interface{}) error {
	r, err := ui.NewRenderer(a.cfg.Output.Format, cmd.OutOrStdout(), a.cfg.Output.NoColor)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

func (a *app) message(cmd *cobra.Command, msg string) error {
	r, err := ui.NewRenderer(a.cfg.Output.Format, cmd.OutOrStdout(), a.cfg.Output.NoColor)
	if err != nil {
		return err
	}
	return r.RenderMessage(msg)
}

// ReportError writes err to the command's error stream, honoring --format
// and --no-color when they were given.
func ReportError(cmd *cobra.Command, err error) {
	format := ui.FormatAuto
	noColor := false
	if f := cmd.PersistentFlags().Lookup("format"); f != nil {
		if parsed, parseErr := ui.ParseFormat(f.Value.String()); parseErr == nil {
			format = parsed
		}
	}
	if f := cmd.PersistentFlags().Lookup("no-color"); f != nil {
		noColor = f.Value.String() == "true"
	}

	r, rErr := ui.NewRenderer(format, cmd.ErrOrStderr(), noColor)
	if rErr != nil {
		return
	}
	_ = r.RenderError(err)
}
