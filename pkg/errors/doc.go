// Package errors provides coded errors for hostboi.
//
// Every failure surfaced by the core carries an ErrorCode so callers and
// tests can branch on the kind of failure (READ_FAIL, WRITE_FAIL, ...)
// without matching message text.
package errors
