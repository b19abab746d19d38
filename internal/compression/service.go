package compression

import (
	"context"
	"io"

	"github.com/vvka-141/fman/internal/files/filesystem"
	"github.com/vvka-141/fman/internal/files/paths"
	"github.com/vvka-141/fman/pkg/fman"
)

// transform is one direction of the codec.
type transform func(ctx context.Context, dst io.Writer, src io.Reader) error

// Service compresses and decompresses files on a FileSystem.
type Service struct {
	fs     filesystem.FileSystem
	logger fman.Logger
}

// NewService creates a compression Service.
func NewService(fsys filesystem.FileSystem, logger fman.Logger) *Service {
	return &Service{fs: fsys, logger: logger}
}

// CompressFile writes the brotli encoding of srcPath to destPath.
func (s *Service) CompressFile(ctx context.Context, dir, srcPath, destPath string) (string, error) {
	if err := s.pipe(ctx, "compress", dir, srcPath, destPath, Compress); err != nil {
		return "", err
	}
	return "File compressed successfully", nil
}

// DecompressFile writes the brotli decoding of srcPath to destPath.
func (s *Service) DecompressFile(ctx context.Context, dir, srcPath, destPath string) (string, error) {
	if err := s.pipe(ctx, "decompress", dir, srcPath, destPath, Decompress); err != nil {
		return "", err
	}
	return "File decompressed successfully", nil
}

func (s *Service) pipe(ctx context.Context, op, dir, srcPath, destPath string, fn transform) error {
	source := paths.Resolve(dir, srcPath)
	dest := paths.Resolve(dir, destPath)
	s.logger.Verbose("%s %s -> %s", op, source, dest)

	info, err := s.fs.Stat(source)
	if err != nil {
		return fman.FromFS(op, source, err)
	}
	if info.IsDir() {
		return fman.Validation(op, source, fman.ErrIsDirectory)
	}
	if filesystem.IsSameFile(s.fs, source, dest) {
		return fman.Validation(op, dest, fman.ErrSamePath)
	}

	r, err := s.fs.Open(source)
	if err != nil {
		return fman.FromFS(op, source, err)
	}
	defer r.Close()

	err = filesystem.WriteAtomic(s.fs, dest, func(w io.Writer) error {
		return fn(ctx, w, r)
	})
	if err != nil {
		return fman.FromFS(op, dest, err)
	}
	return nil
}
