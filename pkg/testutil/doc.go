// Package testutil provides utilities for testing hostboi components.
//
// Key components:
//   - CreateHostsFile and friends: real files under t.TempDir()
//   - NewTestFS / NewMemHosts: afero backed in-memory filesystems
//   - ErrorFS: a types.FS wrapper that injects read/write failures
package testutil
