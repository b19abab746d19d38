// Package paths resolves user supplied paths against the session directory.
package paths

import "path/filepath"

// Resolve joins segments onto base the way a shell would: an absolute segment
// restarts resolution, relative segments are appended, and the result is
// cleaned so "." and ".." are normalized. Empty segments are ignored.
// Resolve performs no I/O; whether the result exists is the caller's concern.
// base must be absolute. A relative base yields a relative result and is a
// caller bug.
func Resolve(base string, segments ...string) string {
	resolved := base
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if filepath.IsAbs(seg) {
			resolved = seg
			continue
		}
		resolved = filepath.Join(resolved, seg)
	}
	return filepath.Clean(resolved)
}

// IsRoot reports whether dir has no parent, i.e. its parent is itself.
func IsRoot(dir string) bool {
	dir = filepath.Clean(dir)
	return filepath.Dir(dir) == dir
}
