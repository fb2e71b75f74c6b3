package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(GetUserDefaultsContent())
}

// commentOutConfigValues comments out every assignment, leaving comments,
// blank lines and section headers as they are.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "",
			strings.HasPrefix(trimmed, "#"),
			strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// ValidateTemplate checks that the user template decodes into Config
// without unknown keys, so uncommenting any value yields a valid file.
func ValidateTemplate() error {
	var cfg Config
	decoder := toml.NewDecoder(strings.NewReader(GetUserDefaultsContent()))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return errors.Wrap(err, errors.ErrConfigInvalid, "config template does not match the configuration schema")
	}
	return nil
}

// WriteConfigFile writes the commented template to path. An existing
// file is only replaced when force is set.
func WriteConfigFile(fsys types.FS, path string, force bool) error {
	if err := ValidateTemplate(); err != nil {
		return err
	}
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrInvalidArgument, "%s already exists", path).
			WithDetail("path", path)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrWriteFail, "failed to create config directory").
			WithDetail("path", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrap(err, errors.ErrWriteFail, "failed to write config file").
			WithDetail("path", path)
	}
	return nil
}
