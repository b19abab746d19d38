package fileops

import (
	"errors"
	"io"

	"github.com/vvka-141/fman/internal/files/filesystem"
)

var errInjected = errors.New("injected failure")

// faultyFS wraps a FileSystem and fails selected primitives.
type faultyFS struct {
	filesystem.FileSystem
	failCreate    bool
	failRemove    bool
	failStatPath  string
	failWriteFrom int // fail writes once this many bytes were accepted; 0 disables
}

func (f *faultyFS) Stat(path string) (filesystem.FileInfo, error) {
	if f.failStatPath != "" && path == f.failStatPath {
		return nil, errInjected
	}
	return f.FileSystem.Stat(path)
}

func (f *faultyFS) CreateExclusive(path string) (io.WriteCloser, error) {
	if f.failCreate {
		return nil, errInjected
	}
	w, err := f.FileSystem.CreateExclusive(path)
	if err != nil || f.failWriteFrom == 0 {
		return w, err
	}
	return &failingWriter{WriteCloser: w, remaining: f.failWriteFrom}, nil
}

func (f *faultyFS) Remove(path string) error {
	if f.failRemove {
		return errInjected
	}
	return f.FileSystem.Remove(path)
}

// failingWriter accepts a fixed number of bytes and then fails every write.
type failingWriter struct {
	io.WriteCloser
	remaining int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		n, _ := w.WriteCloser.Write(p[:w.remaining])
		w.remaining = 0
		return n, errInjected
	}
	w.remaining -= len(p)
	return w.WriteCloser.Write(p)
}
