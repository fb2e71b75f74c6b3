// Package filesystem provides filesystem implementations for hostboi.
//
// This package contains implementations of the types.FS interface,
// the OS filesystem used by the CLI and an afero adapter used by tests.
package filesystem
