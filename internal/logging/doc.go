// Package logging provides concrete implementations of the envscan.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed diagnostic lines to stderr (or any writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// Report output never goes through a Logger; loggers carry diagnostics only,
// so piping a command's stdout stays clean.
package logging
