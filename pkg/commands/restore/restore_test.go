package restore

import (
	"testing"

	"github.com/arthur-debert/hostboi/pkg/commands/internal"
	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/testutil"
	"github.com/arthur-debert/hostboi/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hostsPath  = "/etc/hosts"
	backupPath = "/etc/hosts.backup"
)

func TestRestore(t *testing.T) {
	fsys, mem := testutil.NewMemHosts(t, hostsPath, "broken\n")
	require.NoError(t, afero.WriteFile(mem, backupPath, []byte("127.0.0.1 localhost\n"), 0644))

	result, err := Restore(RestoreOptions{Target: internal.Target{FS: fsys, HostsPath: hostsPath}})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1 localhost\n", testutil.ReadMem(t, mem, hostsPath))
	assert.Equal(t, "127.0.0.1 localhost\n", testutil.ReadMem(t, mem, backupPath), "backup is kept")
	assert.Equal(t, types.OperationRestore, result.Operation)
	assert.Equal(t, backupPath, result.BackupPath)
}

func TestRestore_DryRun(t *testing.T) {
	fsys, mem := testutil.NewMemHosts(t, hostsPath, "broken\n")
	require.NoError(t, afero.WriteFile(mem, backupPath, []byte("127.0.0.1 localhost\n"), 0644))

	result, err := Restore(RestoreOptions{Target: internal.Target{FS: fsys, HostsPath: hostsPath}, DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, "broken\n", testutil.ReadMem(t, mem, hostsPath))
	assert.True(t, result.DryRun)
	assert.Contains(t, result.Diff, "-broken")
	assert.Contains(t, result.Diff, "+127.0.0.1 localhost")
}

func TestRestore_NoBackup(t *testing.T) {
	for _, dryRun := range []bool{false, true} {
		fsys, mem := testutil.NewMemHosts(t, hostsPath, "current\n")

		_, err := Restore(RestoreOptions{Target: internal.Target{FS: fsys, HostsPath: hostsPath}, DryRun: dryRun})

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRestoreFail))
		assert.Equal(t, "current\n", testutil.ReadMem(t, mem, hostsPath))
	}
}
