// Package filesystem provides the filesystem abstraction the file manager
// operations run against.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// WriteAtomic and CopyContext are the shared streaming helpers: every
// operation that produces a file (copy, move, compress, decompress) writes
// through WriteAtomic so a failed stream never leaves a partial destination.
package filesystem
