package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystem is the set of primitives the file manager operations are built on.
// Every path is absolute; resolution against the session directory happens
// before a FileSystem is called. Errors follow the *fs.PathError convention so
// callers can test them with errors.Is(err, fs.ErrNotExist) and friends.
type FileSystem interface {
	// Stat returns file information for the given path, following symlinks.
	Stat(path string) (FileInfo, error)

	// Lstat returns file information for the given path without following a
	// final symlink.
	Lstat(path string) (FileInfo, error)

	// SameFile reports whether two FileInfo values returned by this
	// FileSystem describe the same underlying file.
	SameFile(a, b FileInfo) bool

	// ReadDirNames returns the names of the entries in the directory at path,
	// sorted by name. It does not query per-entry metadata.
	ReadDirNames(path string) ([]string, error)

	// Open opens the file at path for streaming reads.
	Open(path string) (io.ReadCloser, error)

	// CreateExclusive creates the file at path, failing with fs.ErrExist
	// if anything already exists there.
	CreateExclusive(path string) (io.WriteCloser, error)

	// Rename moves oldPath to newPath, replacing a file at newPath.
	Rename(oldPath, newPath string) error

	// Remove deletes the file or empty directory at path.
	Remove(path string) error
}
