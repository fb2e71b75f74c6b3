package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "test.txt", "hello world")
	assert.True(t, FileExists(t, path))
	assert.Equal(t, "hello world", ReadFile(t, path))

	nested := CreateFile(t, dir, "sub/dir/hosts", "nested")
	assert.True(t, FileExists(t, nested))
	AssertFileContent(t, nested, "nested")
}

func TestCreateHostsFile(t *testing.T) {
	path := CreateHostsFile(t, "127.0.0.1 localhost\n")

	assert.Equal(t, "hosts", filepath.Base(path))
	AssertFileContent(t, path, "127.0.0.1 localhost\n")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, FileExists(t, filepath.Join(dir, "missing")))
	assert.False(t, FileExists(t, dir), "directories are not files")
}

func TestAssertNoFile(t *testing.T) {
	AssertNoFile(t, filepath.Join(t.TempDir(), "hosts.backup"))
}

func TestNewMemHosts(t *testing.T) {
	fsys, base := NewMemHosts(t, "/etc/hosts", "#MANAGED\n")

	data, err := fsys.ReadFile("/etc/hosts")
	assert.NoError(t, err)
	assert.Equal(t, "#MANAGED\n", string(data))
	assert.Equal(t, "#MANAGED\n", ReadMem(t, base, "/etc/hosts"))
}
