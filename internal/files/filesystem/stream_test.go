package filesystem

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic_Success(t *testing.T) {
	mfs := NewMemoryFileSystem("/home/user")

	err := WriteAtomic(mfs, "/home/user/out.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "done")
		return err
	})
	require.NoError(t, err)

	content, ok := mfs.Content("out.txt")
	require.True(t, ok)
	assert.Equal(t, "done", content)

	names, err := mfs.ReadDirNames("/home/user")
	require.NoError(t, err)
	assert.Equal(t, []string{"out.txt"}, names, "no temporary file may remain")
}

func TestWriteAtomic_FailureLeavesDestinationUntouched(t *testing.T) {
	mfs := NewMemoryFileSystem("/home/user")
	mfs.AddFile("out.txt", "original")
	boom := errors.New("stream broke")

	err := WriteAtomic(mfs, "/home/user/out.txt", func(w io.Writer) error {
		io.WriteString(w, "half")
		return boom
	})
	require.ErrorIs(t, err, boom)

	content, _ := mfs.Content("out.txt")
	assert.Equal(t, "original", content)

	names, _ := mfs.ReadDirNames("/home/user")
	assert.Equal(t, []string{"out.txt"}, names, "temporary file must be removed on failure")
}

func TestWriteAtomic_MissingParent(t *testing.T) {
	mfs := NewMemoryFileSystem("/home/user")

	err := WriteAtomic(mfs, "/home/user/missing/out.txt", func(w io.Writer) error {
		t.Fatal("write must not be called when the destination cannot be created")
		return nil
	})
	assert.Error(t, err)
}

func TestWriteAtomic_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.txt")

	err := WriteAtomic(NewOSFileSystem(), dest, func(w io.Writer) error {
		_, err := io.WriteString(w, "on disk")
		return err
	})
	require.NoError(t, err)

	names, err := NewOSFileSystem().ReadDirNames(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"out.txt"}, names)
}

func TestTempName(t *testing.T) {
	a := TempName("/home/user/report.txt")
	b := TempName("/home/user/report.txt")

	assert.NotEqual(t, a, b)
	assert.Equal(t, "/home/user", filepath.Dir(a))
	assert.True(t, strings.HasPrefix(filepath.Base(a), ".report.txt."))
	assert.True(t, strings.HasSuffix(a, ".part"))
}

func TestCopyContext(t *testing.T) {
	src := strings.Repeat("x", 200*1024)
	var dst bytes.Buffer

	n, err := CopyContext(context.Background(), &dst, strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, int64(len(src)), n)
	assert.Equal(t, src, dst.String())
}

func TestCopyContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var dst bytes.Buffer
	_, err := CopyContext(ctx, &dst, strings.NewReader("data"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, dst.Len())
}
