// Package logging assembles structured slog loggers for the Red Zebra CLI.
//
// It owns the console and JSON handlers and the level and output plumbing.
// Logs go to stderr, plus an optional log file, so command output on stdout
// stays clean for piping. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
package logging
