package internal

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/hosts"
	"github.com/arthur-debert/hostboi/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetResolve(t *testing.T) {
	fsys := testutil.NewTestFS()

	got, path, err := Target{FS: fsys, HostsPath: "/tmp/../etc/hosts"}.Resolve()
	require.NoError(t, err)
	assert.Same(t, fsys, got)
	assert.Equal(t, "/etc/hosts", path)

	got, _, err = Target{HostsPath: "/etc/hosts"}.Resolve()
	require.NoError(t, err)
	assert.NotNil(t, got, "defaults to the OS filesystem")
}

func TestRunPipeline_AlwaysWrites(t *testing.T) {
	const content = "127.0.0.1 localhost\n"
	fsys, mem := testutil.NewMemHosts(t, "/etc/hosts", content)
	policy := func(l hosts.ClassifiedLine) string { return l.Text }

	result, err := RunPipeline(PipelineOptions{
		Target:    Target{FS: fsys, HostsPath: "/etc/hosts"},
		Operation: "noop",
	}, policy)
	require.NoError(t, err)

	assert.False(t, result.Changed())
	assert.Equal(t, result.ChecksumBefore, result.ChecksumAfter)
	assert.Equal(t, content, testutil.ReadMem(t, mem, "/etc/hosts"))
	assert.Equal(t, content, testutil.ReadMem(t, mem, "/etc/hosts.backup"))
}

func TestDiff(t *testing.T) {
	before := hosts.Parse([]byte("a\nb\nc\n"))
	after := hosts.Parse([]byte("a\nB\nc\n"))

	diff, err := Diff("/etc/hosts", before, after)
	require.NoError(t, err)

	assert.Contains(t, diff, "--- /etc/hosts\n")
	assert.Contains(t, diff, "+++ /etc/hosts (planned)\n")
	assert.Contains(t, diff, "-b\n")
	assert.Contains(t, diff, "+B\n")

	same, err := Diff("/etc/hosts", before, before)
	require.NoError(t, err)
	assert.Empty(t, same)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestWriteDiff_Error(t *testing.T) {
	// Output is buffered, so the diff must outgrow the buffer to reach w.
	var a, b strings.Builder
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&a, "#10.0.%d.1 box%d #SWAP\n", i, i)
		fmt.Fprintf(&b, "10.0.%d.1 box%d #SWAP\n", i, i)
	}
	before := hosts.Parse([]byte(a.String()))
	after := hosts.Parse([]byte(b.String()))

	err := writeDiff(failingWriter{}, "/etc/hosts", before, after)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Equal(t, "/etc/hosts", errors.GetErrorDetails(err)["path"])
}
