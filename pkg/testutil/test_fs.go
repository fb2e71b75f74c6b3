package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hostboi/pkg/filesystem"
	"github.com/arthur-debert/hostboi/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewMemHosts returns an in-memory filesystem holding a hosts file at
// path, plus the underlying afero Fs for direct inspection.
func NewMemHosts(t *testing.T, path, content string) (types.FS, afero.Fs) {
	t.Helper()

	base := afero.NewMemMapFs()
	if err := base.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(base, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to seed %s: %v", path, err)
	}
	return filesystem.NewAferoFS(base), base
}

// ReadMem reads a file from an afero Fs, failing the test on error.
func ReadMem(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}
