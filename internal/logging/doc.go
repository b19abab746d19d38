// Package logging provides concrete implementations of the fman.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to stderr with thread-safe output
//   - ZapLogger: Writes structured JSON entries through zap, typically to a log file
//   - NullLogger: Discards all messages (useful for testing)
//
// Diagnostics never replace the flat messages printed at the prompt; they
// carry the underlying cause of a failed operation for whoever runs with
// --verbose or --log-file.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
