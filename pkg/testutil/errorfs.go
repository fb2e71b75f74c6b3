package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/hostboi/pkg/types"
)

// Filesystem operations that ErrorFS can fail.
const (
	OpRead  = "read"
	OpWrite = "write"
)

type failure struct {
	err   error
	skip  int
	times int // < 0 means every call after skip
}

// ErrorFS wraps a types.FS and fails selected operations on selected
// paths. It lets a test break the hosts write while the backup write
// still goes through, or break a write once and let the retry succeed.
type ErrorFS struct {
	types.FS

	failures map[string]*failure
}

// NewErrorFS wraps base.
func NewErrorFS(base types.FS) *ErrorFS {
	return &ErrorFS{FS: base, failures: make(map[string]*failure)}
}

// FailOn makes every op on path return err.
func (e *ErrorFS) FailOn(op, path string, err error) *ErrorFS {
	return e.add(op, path, &failure{err: err, times: -1})
}

// FailOnce makes only the next op on path return err.
func (e *ErrorFS) FailOnce(op, path string, err error) *ErrorFS {
	return e.add(op, path, &failure{err: err, times: 1})
}

// FailAfter lets n calls of op on path succeed, then returns err.
func (e *ErrorFS) FailAfter(op, path string, n int, err error) *ErrorFS {
	return e.add(op, path, &failure{err: err, skip: n, times: -1})
}

func (e *ErrorFS) add(op, path string, f *failure) *ErrorFS {
	e.failures[op+":"+filepath.Clean(path)] = f
	return e
}

func (e *ErrorFS) check(op, path string) error {
	f, ok := e.failures[op+":"+filepath.Clean(path)]
	if !ok {
		return nil
	}
	if f.skip > 0 {
		f.skip--
		return nil
	}
	if f.times == 0 {
		return nil
	}
	if f.times > 0 {
		f.times--
	}
	return &fs.PathError{Op: op, Path: path, Err: f.err}
}

func (e *ErrorFS) ReadFile(name string) ([]byte, error) {
	if err := e.check(OpRead, name); err != nil {
		return nil, err
	}
	return e.FS.ReadFile(name)
}

func (e *ErrorFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := e.check(OpWrite, name); err != nil {
		return err
	}
	return e.FS.WriteFile(name, data, perm)
}
