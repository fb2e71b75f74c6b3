package restore

import (
	"time"

	"github.com/arthur-debert/hostboi/pkg/backup"
	"github.com/arthur-debert/hostboi/pkg/commands/internal"
	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/hosts"
	"github.com/arthur-debert/hostboi/pkg/logging"
	"github.com/arthur-debert/hostboi/pkg/types"
)

// RestoreOptions defines the options for the Restore command.
type RestoreOptions struct {
	internal.Target
	DryRun bool
}

// Restore copies the last backup back over the hosts file. The backup
// itself is kept.
func Restore(opts RestoreOptions) (*types.MutationResult, error) {
	log := logging.GetLogger("commands.restore")

	fsys, hostsPath, err := opts.Resolve()
	if err != nil {
		return nil, err
	}
	guard := backup.NewGuard(fsys, hostsPath)

	result := &types.MutationResult{
		Operation:  types.OperationRestore,
		HostsPath:  hostsPath,
		BackupPath: guard.Path(),
		DryRun:     opts.DryRun,
		Timestamp:  time.Now(),
	}

	if opts.DryRun {
		current, err := hosts.Load(fsys, hostsPath)
		if err != nil {
			return nil, err
		}
		saved, err := hosts.Load(fsys, guard.Path())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRestoreFail, "no backup to restore").
				WithDetail("backup", guard.Path())
		}
		diff, err := internal.Diff(hostsPath, current, saved)
		if err != nil {
			return nil, err
		}
		result.Diff = diff
		return result, nil
	}

	if err := guard.Restore(); err != nil {
		return nil, err
	}

	log.Info().Str("hosts", hostsPath).Str("backup", guard.Path()).Msg("Command finished")
	return result, nil
}
