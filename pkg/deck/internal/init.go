// Package internal contains shared infrastructure for the deck packages,
// currently the process-wide structured loggers.
// Types and functions in this package are not part of the public API.
package internal
