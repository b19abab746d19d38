package fileops

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/vvka-141/fman/internal/files/filesystem"
	"github.com/vvka-141/fman/internal/files/paths"
	"github.com/vvka-141/fman/pkg/fman"
)

// Service performs file operations against a FileSystem.
type Service struct {
	fs     filesystem.FileSystem
	logger fman.Logger
}

// NewService creates a Service. Panics if fsys or logger is nil.
func NewService(fsys filesystem.FileSystem, logger fman.Logger) *Service {
	if fsys == nil {
		panic("filesystem cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{fs: fsys, logger: logger}
}

// AddFile creates an empty file. An existing file at the target is an error,
// never overwritten.
func (s *Service) AddFile(ctx context.Context, dir, name string) (string, error) {
	target := paths.Resolve(dir, name)
	s.logger.Verbose("add %s", target)

	w, err := s.fs.CreateExclusive(target)
	if err != nil {
		return "", fman.FromFS("add", target, err)
	}
	if err := w.Close(); err != nil {
		return "", fman.IO("add", target, err)
	}
	return fmt.Sprintf("%s created successfully", name), nil
}

// RenameFile renames oldPath to newName, both resolved against dir.
func (s *Service) RenameFile(ctx context.Context, dir, oldPath, newName string) (string, error) {
	source := paths.Resolve(dir, oldPath)
	target := paths.Resolve(dir, newName)
	s.logger.Verbose("rename %s -> %s", source, target)

	if _, err := s.fs.Stat(source); err != nil {
		return "", fman.FromFS("rn", source, err)
	}
	if err := s.fs.Rename(source, target); err != nil {
		return "", fman.FromFS("rn", target, err)
	}
	return fmt.Sprintf("File renamed to %s", newName), nil
}

// DeleteFile removes a file. Directories are refused.
func (s *Service) DeleteFile(ctx context.Context, dir, path string) (string, error) {
	target := paths.Resolve(dir, path)
	s.logger.Verbose("delete %s", target)

	if err := s.remove("rm", target); err != nil {
		return "", err
	}
	return fmt.Sprintf("File %s deleted successfully", path), nil
}

// CopyFile streams srcPath into destDir under its own base name.
func (s *Service) CopyFile(ctx context.Context, dir, srcPath, destDir string) (string, error) {
	_, dest, err := s.copy(ctx, "cp", dir, srcPath, destDir)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("File copied to %s", dest), nil
}

// MoveFile copies srcPath into destDir and, only once the copy is in place,
// deletes the source. A failed copy leaves the source untouched.
func (s *Service) MoveFile(ctx context.Context, dir, srcPath, destDir string) (string, error) {
	source, dest, err := s.copy(ctx, "mv", dir, srcPath, destDir)
	if err != nil {
		return "", err
	}
	if err := s.remove("mv", source); err != nil {
		s.logger.Error("move: %s copied to %s but source could not be removed: %v", source, dest, err)
		return "", err
	}
	return fmt.Sprintf("File moved to %s", dest), nil
}

// ReadFile streams the content of path to w.
func (s *Service) ReadFile(ctx context.Context, dir, path string, w io.Writer) error {
	target := paths.Resolve(dir, path)
	s.logger.Verbose("read %s", target)

	if err := s.requireFile("cat", target); err != nil {
		return err
	}
	r, err := s.fs.Open(target)
	if err != nil {
		return fman.FromFS("cat", target, err)
	}
	defer r.Close()

	if _, err := filesystem.CopyContext(ctx, w, r); err != nil {
		return fman.IO("cat", target, err)
	}
	return nil
}

// copy resolves the source and destination, validates both, and streams the
// source into place. It returns the resolved source and destination paths.
func (s *Service) copy(ctx context.Context, op, dir, srcPath, destDir string) (string, string, error) {
	source := paths.Resolve(dir, srcPath)
	targetDir := paths.Resolve(dir, destDir)
	dest := paths.Resolve(targetDir, filepath.Base(source))
	s.logger.Verbose("%s %s -> %s", op, source, dest)

	if err := s.requireFile(op, source); err != nil {
		return "", "", err
	}
	if err := s.requireDir(op, targetDir); err != nil {
		return "", "", err
	}
	if filesystem.IsSameFile(s.fs, source, dest) {
		return "", "", fman.Validation(op, dest, fman.ErrSamePath)
	}

	r, err := s.fs.Open(source)
	if err != nil {
		return "", "", fman.FromFS(op, source, err)
	}
	defer r.Close()

	err = filesystem.WriteAtomic(s.fs, dest, func(w io.Writer) error {
		_, err := filesystem.CopyContext(ctx, w, r)
		return err
	})
	if err != nil {
		return "", "", fman.FromFS(op, dest, err)
	}
	return source, dest, nil
}

// remove unlinks target. A symlink is removed itself, never what it points to.
func (s *Service) remove(op, target string) error {
	info, err := s.fs.Lstat(target)
	if err != nil {
		return fman.FromFS(op, target, err)
	}
	if info.IsDir() {
		return fman.Validation(op, target, fman.ErrIsDirectory)
	}
	if err := s.fs.Remove(target); err != nil {
		return fman.FromFS(op, target, err)
	}
	return nil
}

func (s *Service) requireFile(op, target string) error {
	info, err := s.fs.Stat(target)
	if err != nil {
		return fman.FromFS(op, target, err)
	}
	if info.IsDir() {
		return fman.Validation(op, target, fman.ErrIsDirectory)
	}
	return nil
}

func (s *Service) requireDir(op, target string) error {
	info, err := s.fs.Stat(target)
	if err != nil {
		return fman.FromFS(op, target, err)
	}
	if !info.IsDir() {
		return fman.Validation(op, target, fman.ErrNotDirectory)
	}
	return nil
}
