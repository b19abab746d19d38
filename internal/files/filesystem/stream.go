package filesystem

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/vvka-141/fman/pkg/fman"
)

// WriteAtomic streams into a uniquely named temporary sibling of dest and
// renames it over dest only after write returned nil and the file closed
// cleanly. On any failure the temporary file is removed and dest is untouched.
func WriteAtomic(fsys FileSystem, dest string, write func(w io.Writer) error) (err error) {
	tmp := TempName(dest)
	w, err := fsys.CreateExclusive(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmp)
		}
	}()

	if err = write(w); err != nil {
		_ = w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return fsys.Rename(tmp, dest)
}

// IsSameFile reports whether paths a and b name the same existing file,
// including through symlinked directories or hard links. A path that cannot
// be stat'ed is never the same file as another.
func IsSameFile(fsys FileSystem, a, b string) bool {
	if a == b {
		return true
	}
	infoA, err := fsys.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := fsys.Stat(b)
	if err != nil {
		return false
	}
	return fsys.SameFile(infoA, infoB)
}

// TempName returns the hidden temporary name WriteAtomic uses for dest.
func TempName(dest string) string {
	return filepath.Join(filepath.Dir(dest), "."+filepath.Base(dest)+"."+uuid.NewString()+".part")
}

// CopyContext copies src to dst in fman.StreamBufferSize chunks, stopping
// before the next chunk once ctx is done.
func CopyContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, fman.StreamBufferSize)
	return io.CopyBuffer(dst, &contextReader{ctx: ctx, r: src}, buf)
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
