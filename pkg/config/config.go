package config

import (
	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/ui"
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective hostboi configuration.
type Config struct {
	Hosts   Hosts   `koanf:"hosts" toml:"hosts"`
	Output  Output  `koanf:"output" toml:"output"`
	Logging Logging `koanf:"logging" toml:"logging"`
}

// Hosts selects the file to manage.
type Hosts struct {
	// Path overrides the OS hosts file when non-empty.
	Path string `koanf:"path" toml:"path"`
}

// Output controls how results are rendered.
type Output struct {
	Format  ui.Format `koanf:"format" toml:"format"`
	NoColor bool      `koanf:"no_color" toml:"no_color"`
}

// Logging controls the optional log file.
type Logging struct {
	File bool `koanf:"file" toml:"file"`
}

// Default returns the built-in configuration, ignoring the user file and
// the environment.
func Default() *Config {
	cfg, err := decode(defaultConfig)
	if err != nil {
		// The embedded defaults are covered by tests.
		panic(err)
	}
	return cfg
}

// TOML renders cfg the way it would be written in a config file.
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
