package hostboi

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Switch host entries in the managed section of your hosts file"
	MsgListShort       = "List the favorites defined in the hosts file"
	MsgListLong        = "List prints every #FAV[NAME] tag found in the hosts file, in the order they first appear. Commented lines and lines outside the managed section count too."
	MsgSwapShort       = "Point the #SWAP lines at box N"
	MsgFavShort        = "Activate the lines of one favorite"
	MsgRestoreShort    = "Put the last backup back"
	MsgConfigShort     = "Show the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgVersionFormat = "hostboi version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten = "Configuration template written to %s"
	MsgConfigSource  = "# effective configuration (user file: %s)"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Show the planned change as a diff without writing anything"
	MsgFlagHosts   = "Hosts file to manage (default: the system hosts file)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagConfig  = "Config file to use instead of the XDG user config"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrBoxNumber   = "box number must be an integer, got %q"
	MsgErrBoxTooLow   = "box number must be 1 or above, got %s"
	MsgErrNoFavorites = "no #FAV[...] tags found in %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/swap-long.txt
	msgSwapLongRaw string
	MsgSwapLong    = strings.TrimSpace(msgSwapLongRaw)

	//go:embed msgs/swap-example.txt
	msgSwapExampleRaw string
	MsgSwapExample    = strings.TrimRight(msgSwapExampleRaw, "\n")

	//go:embed msgs/fav-long.txt
	msgFavLongRaw string
	MsgFavLong    = strings.TrimSpace(msgFavLongRaw)

	//go:embed msgs/fav-example.txt
	msgFavExampleRaw string
	MsgFavExample    = strings.TrimRight(msgFavExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/restore-long.txt
	msgRestoreLongRaw string
	MsgRestoreLong    = strings.TrimSpace(msgRestoreLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
