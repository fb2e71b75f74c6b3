package genconfig

// Message constants
const (
	MsgShort   = "Generate a commented configuration file"
	MsgLong    = "Output the configuration template to stdout, every value commented out.\n\nWith -w, write it to $XDG_CONFIG_HOME/hostboi/config.toml instead."
	MsgExample = `  hostboi gen-config        # Output to stdout
  hostboi gen-config -w     # Write to the user config file`

	MsgFlagWrite = "Write the template to the user config file instead of stdout"
	MsgFlagForce = "Overwrite an existing config file"
)
