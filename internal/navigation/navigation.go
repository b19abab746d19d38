// Package navigation validates directory changes for the session.
//
// The functions never hold the current directory themselves: they take the
// session's directory, and on success return the directory the session
// should adopt.
package navigation

import (
	"context"
	"path/filepath"

	"github.com/vvka-141/fman/internal/files/filesystem"
	"github.com/vvka-141/fman/internal/files/paths"
	"github.com/vvka-141/fman/pkg/fman"
)

// Navigator validates navigation targets against a FileSystem.
type Navigator struct {
	fs filesystem.FileSystem
}

// New creates a Navigator.
func New(fsys filesystem.FileSystem) *Navigator {
	return &Navigator{fs: fsys}
}

// ChangeDirectory resolves target against current and returns it if it is an
// existing directory.
func (n *Navigator) ChangeDirectory(ctx context.Context, current, target string) (string, error) {
	next := paths.Resolve(current, target)

	info, err := n.fs.Stat(next)
	if err != nil {
		return "", fman.FromFS("cd", next, err)
	}
	if !info.IsDir() {
		return "", fman.Validation("cd", next, fman.ErrNotDirectory)
	}
	return next, nil
}

// GoUp returns the parent of current, or ErrAtRoot when current is the root.
func (n *Navigator) GoUp(ctx context.Context, current string) (string, error) {
	if paths.IsRoot(current) {
		return "", fman.Validation("up", current, fman.ErrAtRoot)
	}
	return filepath.Dir(filepath.Clean(current)), nil
}
