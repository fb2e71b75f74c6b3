// Package backup keeps a single pre-mutation copy of the hosts file.
package backup

import (
	"io/fs"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/logging"
	"github.com/arthur-debert/hostboi/pkg/paths"
	"github.com/arthur-debert/hostboi/pkg/types"
)

const defaultFileMode fs.FileMode = 0644

// Guard snapshots the hosts file to <hosts>.backup and copies it back on
// request. Every snapshot overwrites the previous one.
type Guard struct {
	fs         types.FS
	hostsPath  string
	backupPath string
}

// NewGuard creates a guard for the hosts file at hostsPath.
func NewGuard(fsys types.FS, hostsPath string) *Guard {
	return &Guard{
		fs:         fsys,
		hostsPath:  hostsPath,
		backupPath: paths.BackupPath(hostsPath),
	}
}

// Path returns the backup file location.
func (g *Guard) Path() string {
	return g.backupPath
}

// Snapshot copies the hosts file to the backup path.
func (g *Guard) Snapshot() error {
	logger := logging.GetLogger("backup")
	if err := g.copy(g.hostsPath, g.backupPath); err != nil {
		logger.Error().Err(err).Str("backup", g.backupPath).Msg("Snapshot failed")
		return errors.Wrap(err, errors.ErrBackupFail, "failed to backup hosts").
			WithDetail("path", g.hostsPath).
			WithDetail("backup", g.backupPath)
	}
	logger.Debug().Str("hosts", g.hostsPath).Str("backup", g.backupPath).Msg("Snapshot taken")
	return nil
}

// Restore copies the backup over the hosts file.
func (g *Guard) Restore() error {
	logger := logging.GetLogger("backup")
	if err := g.copy(g.backupPath, g.hostsPath); err != nil {
		logger.Error().Err(err).Str("backup", g.backupPath).Msg("Restore failed")
		return errors.Wrap(err, errors.ErrRestoreFail, "failed to restore backup").
			WithDetail("path", g.hostsPath).
			WithDetail("backup", g.backupPath)
	}
	logger.Info().Str("hosts", g.hostsPath).Str("backup", g.backupPath).Msg("Backup restored")
	return nil
}

// copy duplicates src onto dst with src's permissions.
func (g *Guard) copy(src, dst string) error {
	info, err := g.fs.Stat(src)
	if err != nil {
		return err
	}
	data, err := g.fs.ReadFile(src)
	if err != nil {
		return err
	}
	mode := info.Mode().Perm()
	if mode == 0 {
		mode = defaultFileMode
	}
	return g.fs.WriteFile(dst, data, mode)
}
