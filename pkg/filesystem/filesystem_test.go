package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "hosts")
	testContent := []byte("127.0.0.1 localhost\n")

	err := fs.WriteFile(testFile, testContent, 0644)
	require.NoError(t, err)

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "hosts", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	err = fs.MkdirAll(filepath.Join(tmpDir, "etc", "sub"), 0755)
	require.NoError(t, err)

	err = fs.Remove(testFile)
	require.NoError(t, err)
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestAferoFS(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("/etc", 0755))
	require.NoError(t, fs.WriteFile("/etc/hosts", []byte("10.0.0.1 box"), 0644))

	content, err := fs.ReadFile("/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1 box", string(content))

	_, err = fs.ReadFile("/etc")
	assert.Error(t, err, "reading a directory must fail")

	require.NoError(t, fs.Remove("/etc/hosts"))
	_, err = fs.Stat("/etc/hosts")
	assert.True(t, os.IsNotExist(err))
}

func TestAferoFS_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/etc", 0755))
	require.NoError(t, afero.WriteFile(base, "/etc/hosts", []byte("x"), 0644))

	fs := NewAferoFS(afero.NewReadOnlyFs(base))

	_, err := fs.ReadFile("/etc/hosts")
	require.NoError(t, err)
	assert.Error(t, fs.WriteFile("/etc/hosts", []byte("y"), 0644))
}
