// Package config loads hostboi's settings.
//
// Sources are layered with koanf, each overriding the previous one:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/hostboi/config.toml
//  3. HOSTBOI_* environment variables (HOSTBOI_HOSTS_PATH sets hosts.path)
//  4. overrides from command line flags
//
// The merged map is decoded into Config with mapstructure.
package config
