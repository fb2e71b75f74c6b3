// Package types defines the result types and interfaces shared by the
// hostboi command layer, its renderers and the CLI.
package types
