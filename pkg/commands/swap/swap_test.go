package swap

import (
	stderrors "errors"
	"io/fs"
	"strings"
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

const original = `127.0.0.1 localhost
#MANAGED
#1.2.3.4 boxname #SWAP
10.0.1.1 api #FAV[DEV51]
#/MANAGED
10.9.9.9 outside
`

const swapped = `127.0.0.1 localhost
#MANAGED
1.2.7.4 boxname #SWAP
#10.0.1.1 api #FAV[DEV51]
#/MANAGED
10.9.9.9 outside
`

func TestSwap(t *testing.T) {
	fsys, mem := testutil.NewMemHosts(t, hostsPath, original)

	result, err := Swap(SwapOptions{
		Target:    internal.Target{FS: fsys, HostsPath: hostsPath},
		BoxNumber: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, swapped, testutil.ReadMem(t, mem, hostsPath))
	assert.Equal(t, original, testutil.ReadMem(t, mem, backupPath), "backup holds the pre-swap content")

	assert.Equal(t, types.OperationSwap, result.Operation)
	assert.Equal(t, "7", result.Target)
	assert.Equal(t, hostsPath, result.HostsPath)
	assert.Equal(t, backupPath, result.BackupPath)
	assert.False(t, result.DryRun)
	assert.Empty(t, result.Diff)
	require.Len(t, result.Changes, 2)
	assert.True(t, result.Changed())
	assert.NotEqual(t, result.ChecksumBefore, result.ChecksumAfter)
}

func TestSwap_RealFile(t *testing.T) {
	path := testutil.CreateHostsFile(t, original)

	_, err := Swap(SwapOptions{Target: internal.Target{HostsPath: path}, BoxNumber: 7})
	require.NoError(t, err)

	testutil.AssertFileContent(t, path, swapped)
	testutil.AssertFileContent(t, path+".backup", original)
}

func TestSwap_Idempotent(t *testing.T) {
	fsys, mem := testutil.NewMemHosts(t, hostsPath, original)
	opts := SwapOptions{Target: internal.Target{FS: fsys, HostsPath: hostsPath}, BoxNumber: 7}

	_, err := Swap(opts)
	require.NoError(t, err)
	first := testutil.ReadMem(t, mem, hostsPath)

	result, err := Swap(opts)
	require.NoError(t, err)

	assert.Equal(t, first, testutil.ReadMem(t, mem, hostsPath))
	assert.Empty(t, result.Changes)
	assert.Equal(t, first, testutil.ReadMem(t, mem, backupPath), "backup follows the latest call")
}

func TestSwap_InvalidBoxNumber(t *testing.T) {
	for _, box := range []int{0, -3} {
		fsys, mem := testutil.NewMemHosts(t, hostsPath, original)

		_, err := Swap(SwapOptions{Target: internal.Target{FS: fsys, HostsPath: hostsPath}, BoxNumber: box})

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
		assert.Equal(t, original, testutil.ReadMem(t, mem, hostsPath))
		exists, _ := afero.Exists(mem, backupPath)
		assert.False(t, exists, "no backup is taken for an invalid box number")
	}
}

func TestSwap_DryRun(t *testing.T) {
	fsys, mem := testutil.NewMemHosts(t, hostsPath, original)

	result, err := Swap(SwapOptions{
		Target:    internal.Target{FS: fsys, HostsPath: hostsPath},
		BoxNumber: 7,
		DryRun:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, original, testutil.ReadMem(t, mem, hostsPath))
	exists, _ := afero.Exists(mem, backupPath)
	assert.False(t, exists)

	assert.True(t, result.DryRun)
	assert.Len(t, result.Changes, 2)
	assert.Contains(t, result.Diff, "-#1.2.3.4 boxname #SWAP")
	assert.Contains(t, result.Diff, "+1.2.7.4 boxname #SWAP")
	assert.NotContains(t, result.Diff, "outside")
}

func TestSwap_Failures(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(*testutil.ErrorFS)
		wantCode     errors.ErrorCode
		wantHosts    string
		wantRestored interface{}
	}{
		{
			name: "backup not writable aborts the swap",
			setup: func(e *testutil.ErrorFS) {
				e.FailOn(testutil.OpWrite, backupPath, fs.ErrPermission)
			},
			wantCode:  errors.ErrBackupFail,
			wantHosts: original,
		},
		{
			name: "hosts unreadable after snapshot",
			setup: func(e *testutil.ErrorFS) {
				e.FailAfter(testutil.OpRead, hostsPath, 1, fs.ErrPermission)
			},
			wantCode:  errors.ErrReadFail,
			wantHosts: original,
		},
		{
			name: "write failure is restored",
			setup: func(e *testutil.ErrorFS) {
				e.FailOnce(testutil.OpWrite, hostsPath, fs.ErrPermission)
			},
			wantCode:     errors.ErrWriteFail,
			wantHosts:    original,
			wantRestored: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys, mem := testutil.NewMemHosts(t, hostsPath, original)
			efs := testutil.NewErrorFS(fsys)
			tt.setup(efs)

			result, err := Swap(SwapOptions{Target: internal.Target{FS: efs, HostsPath: hostsPath}, BoxNumber: 7})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, tt.wantHosts, testutil.ReadMem(t, mem, hostsPath))
			if tt.wantRestored != nil {
				assert.Equal(t, tt.wantRestored, errors.GetErrorDetails(err)["restored"])
			}
		})
	}
}

func TestSwap_WriteAndRestoreFail(t *testing.T) {
	fsys, _ := testutil.NewMemHosts(t, hostsPath, original)
	efs := testutil.NewErrorFS(fsys).FailOn(testutil.OpWrite, hostsPath, fs.ErrPermission)

	_, err := Swap(SwapOptions{Target: internal.Target{FS: efs, HostsPath: hostsPath}, BoxNumber: 7})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWriteFail))
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrRestoreFail, "")), "restore failure is surfaced too")
	details := errors.GetErrorDetails(err)
	assert.Equal(t, false, details["restored"])
	assert.True(t, strings.Contains(details["restore_error"].(string), "RESTORE_FAIL"))
}

func TestSwap_MissingHostsFile(t *testing.T) {
	_, err := Swap(SwapOptions{
		Target:    internal.Target{FS: testutil.NewTestFS(), HostsPath: hostsPath},
		BoxNumber: 7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackupFail))
}
