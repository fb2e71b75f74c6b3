// Package logging wraps zerolog with hostboi's verbosity levels:
// 0 warn, 1 info, 2 debug (with caller), 3+ trace.
package logging
