// Package fileops implements the file manager's filesystem operations:
// add, rename, delete, copy, move, list and read.
//
// Every operation takes the session directory explicitly, resolves its path
// arguments against it, and returns exactly one result: a success message
// (or listing) or an *fman.OpError. Operations that produce a file write it
// through filesystem.WriteAtomic, so a failed stream is never reported as
// success and never leaves a partial destination behind.
//
// Move is strictly copy-then-delete: the source is removed only after the
// copy has been renamed into place.
package fileops
