// Package paths provides centralized path handling for hostboi.
// It knows where the operating system keeps its hosts file and follows
// the XDG Base Directory specification for hostboi's own files.
//
// Hosts file locations:
//
//	linux, darwin, *bsd   /etc/hosts
//	windows               %SystemRoot%\System32\drivers\etc\hosts
//
// Any other platform yields a HOSTS_UNAVAILABLE error unless the caller
// supplies an explicit path.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/hostboi/pkg/errors"
)

// Environment variable names
const (
	// EnvHostsPath overrides the hosts file location (config key hosts.path)
	EnvHostsPath = "HOSTBOI_HOSTS_PATH"

	// EnvSystemRoot is the Windows system root variable
	EnvSystemRoot = "SystemRoot"
)

// Default directories and files
const (
	// AppDirName is the directory name for hostboi-specific files
	AppDirName = "hostboi"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "hostboi.log"

	// BackupSuffix is appended to the hosts path to form the backup path
	BackupSuffix = ".backup"

	unixHostsPath      = "/etc/hosts"
	defaultWindowsRoot = `C:\Windows`
)

// HostsPath returns the hosts file location for the running OS.
func HostsPath() (string, error) {
	return hostsPathFor(runtime.GOOS, os.Getenv)
}

func hostsPathFor(goos string, getenv func(string) string) (string, error) {
	switch goos {
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return unixHostsPath, nil
	case "windows":
		root := getenv(EnvSystemRoot)
		if root == "" {
			root = defaultWindowsRoot
		}
		return root + `\System32\drivers\etc\hosts`, nil
	default:
		return "", errors.New(errors.ErrHostsUnavailable, "cannot find hosts file").
			WithDetail("os", goos)
	}
}

// ResolveHostsPath picks the hosts file to operate on. An explicit
// override (flag or configuration) wins over the OS default.
func ResolveHostsPath(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	return HostsPath()
}

// BackupPath returns the fixed sibling path holding the last snapshot.
func BackupPath(hostsPath string) string {
	return hostsPath + BackupSuffix
}

// ConfigDir returns the XDG config directory for hostboi
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the user configuration file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the XDG state directory for hostboi
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
