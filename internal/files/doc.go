// Package files groups the file handling of fman into sub-packages:
//   - paths: resolving user-typed paths against the current directory
//   - filesystem: the FileSystem abstraction (OS and in-memory) and atomic streaming writes
//   - fileops: the file commands (add, rn, rm, cp, mv, cat, ls)
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/fman/internal/files/filesystem"
//	    "github.com/vvka-141/fman/internal/files/fileops"
//	)
//
//	svc := fileops.NewService(filesystem.NewOSFileSystem(), logger)
//	msg, err := svc.CopyFile(ctx, "/home/ada", "notes.txt", "archive")
//
// Every write that streams content lands in a temporary sibling first and is
// renamed into place only once complete, so a failed copy never leaves a
// truncated destination behind.
package files
