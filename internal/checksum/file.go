package checksum

import (
	"context"

	"github.com/vvka-141/fman/internal/files/filesystem"
	"github.com/vvka-141/fman/internal/files/paths"
	"github.com/vvka-141/fman/pkg/fman"
)

// FileHasher digests files read from a FileSystem.
type FileHasher struct {
	fs   filesystem.FileSystem
	calc Calculator
}

// NewFileHasher creates a FileHasher. A nil calc selects SHA-256.
func NewFileHasher(fsys filesystem.FileSystem, calc Calculator) *FileHasher {
	if calc == nil {
		calc = New()
	}
	return &FileHasher{fs: fsys, calc: calc}
}

// CalculateHash streams the file at path, resolved against dir, through the
// digest and returns its hex encoding.
func (h *FileHasher) CalculateHash(ctx context.Context, dir, path string) (string, error) {
	target := paths.Resolve(dir, path)

	info, err := h.fs.Stat(target)
	if err != nil {
		return "", fman.FromFS("hash", target, err)
	}
	if info.IsDir() {
		return "", fman.Validation("hash", target, fman.ErrIsDirectory)
	}

	r, err := h.fs.Open(target)
	if err != nil {
		return "", fman.FromFS("hash", target, err)
	}
	defer r.Close()

	sum, err := h.calc.CalculateStream(ctx, r)
	if err != nil {
		return "", fman.IO("hash", target, err)
	}
	return sum, nil
}
