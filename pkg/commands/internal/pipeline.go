package internal

import (
	stderrors "errors"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/hostboi/pkg/backup"
	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/filesystem"
	"github.com/arthur-debert/hostboi/pkg/hosts"
	"github.com/arthur-debert/hostboi/pkg/internal/hashutil"
	"github.com/arthur-debert/hostboi/pkg/logging"
	"github.com/arthur-debert/hostboi/pkg/paths"
	"github.com/arthur-debert/hostboi/pkg/types"
	"github.com/pmezard/go-difflib/difflib"
)

// Target identifies the hosts file an operation works on.
type Target struct {
	// FS defaults to the OS filesystem.
	FS types.FS
	// HostsPath defaults to the OS hosts file.
	HostsPath string
}

// Resolve fills in the defaults of t.
func (t Target) Resolve() (types.FS, string, error) {
	fsys := t.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	path, err := paths.ResolveHostsPath(t.HostsPath)
	if err != nil {
		return nil, "", err
	}
	return fsys, path, nil
}

// PipelineOptions contains options for running a mutation
type PipelineOptions struct {
	Target
	Operation string
	Argument  string
	DryRun    bool
}

// RunPipeline executes a hosts mutation:
// Snapshot -> Load -> Rewrite -> Save, restoring the snapshot when Save fails.
// In dry-run mode nothing is written, not even the snapshot.
func RunPipeline(opts PipelineOptions, policy hosts.Policy) (*types.MutationResult, error) {
	logger := logging.GetLogger("commands.internal.pipeline")
	done := logging.LogOperationStart(logger, opts.Operation)
	defer done()

	fsys, hostsPath, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	guard := backup.NewGuard(fsys, hostsPath)
	result := &types.MutationResult{
		Operation:  opts.Operation,
		Target:     opts.Argument,
		HostsPath:  hostsPath,
		BackupPath: guard.Path(),
		DryRun:     opts.DryRun,
		Timestamp:  time.Now(),
	}

	logger.Debug().
		Str("hosts", hostsPath).
		Str("operation", opts.Operation).
		Str("argument", opts.Argument).
		Bool("dryRun", opts.DryRun).
		Msg("Starting hosts mutation")

	if !opts.DryRun {
		if err := guard.Snapshot(); err != nil {
			return nil, err
		}
	}

	doc, err := hosts.Load(fsys, hostsPath)
	if err != nil {
		return nil, err
	}

	next, changes := hosts.Rewrite(doc, policy)
	result.Changes = changes
	result.ChecksumBefore = hashutil.Checksum(doc.Bytes())
	result.ChecksumAfter = hashutil.Checksum(next.Bytes())

	if opts.DryRun {
		diff, err := Diff(hostsPath, doc, next)
		if err != nil {
			logger.Error().Err(err).Msg("Could not render dry run diff")
			return nil, err
		}
		result.Diff = diff
		logger.Info().Int("changes", len(changes)).Msg("Dry run, hosts file left untouched")
		return result, nil
	}

	if err := hosts.Save(fsys, hostsPath, next); err != nil {
		return nil, restoreAfterWriteFailure(guard, err)
	}

	logger.Info().
		Str("hosts", hostsPath).
		Str("operation", opts.Operation).
		Int("changes", len(changes)).
		Msg("Hosts file updated")
	return result, nil
}

// restoreAfterWriteFailure puts the snapshot back after a failed write.
// When the restore fails too, both errors are returned and the hosts file
// is in an unknown state.
func restoreAfterWriteFailure(guard *backup.Guard, writeErr error) error {
	logger := logging.GetLogger("commands.internal.pipeline")
	restoreErr := guard.Restore()
	if restoreErr == nil {
		logger.Warn().Err(writeErr).Msg("Write failed, hosts file restored from backup")
		var hbErr *errors.HostboiError
		if stderrors.As(writeErr, &hbErr) {
			return hbErr.WithDetail("restored", true)
		}
		return errors.Wrap(writeErr, errors.ErrWriteFail, "failed to write hosts").
			WithDetail("restored", true)
	}

	logger.Error().
		Err(writeErr).
		AnErr("restoreError", restoreErr).
		Msg("Write and restore both failed, hosts file state is unknown")
	return errors.Wrap(stderrors.Join(writeErr, restoreErr), errors.ErrWriteFail,
		"failed to restore backup after write failure").
		WithDetail("restored", false).
		WithDetail("restore_error", restoreErr.Error())
}

// Diff renders a unified diff between two versions of the hosts file.
func Diff(path string, before, after *hosts.Document) (string, error) {
	var buf strings.Builder
	if err := writeDiff(&buf, path, before, after); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeDiff(w io.Writer, path string, before, after *hosts.Document) error {
	err := difflib.WriteUnifiedDiff(w, difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before.Bytes())),
		B:        difflib.SplitLines(string(after.Bytes())),
		FromFile: path,
		ToFile:   path + " (planned)",
		Context:  1,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render diff").
			WithDetail("path", path)
	}
	return nil
}
