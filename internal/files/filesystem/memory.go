package filesystem

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	errIsDir       = errors.New("is a directory")
	errNotDir      = errors.New("not a directory")
	errDirNotEmpty = errors.New("directory not empty")
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
	node    *memoryNode
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryNode is a file or directory stored in a MemoryFileSystem
type memoryNode struct {
	content []byte
	modTime time.Time
	isDir   bool
}

func (n *memoryNode) info(path string) *memoryFileInfo {
	mode := fs.FileMode(0644)
	if n.isDir {
		mode = 0755 | fs.ModeDir
	}
	return &memoryFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(n.content)),
		mode:    mode,
		modTime: n.modTime,
		isDir:   n.isDir,
		node:    n,
	}
}

// MemoryFileSystem implements FileSystem in memory for testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	nodes map[string]*memoryNode // map of absolute path -> node
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root directory,
// and every ancestor of it, already exists.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{
		nodes: make(map[string]*memoryNode),
		root:  filepath.Clean(root),
	}
	mfs.ensureDirectoriesExist(filepath.Join(mfs.root, "_"))
	return mfs
}

// AddFile adds a file to the in-memory filesystem, creating parent directories.
// Relative paths are taken relative to the root.
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(path)
	mfs.ensureDirectoriesExist(absPath)
	mfs.nodes[absPath] = &memoryNode{content: []byte(content), modTime: time.Now()}
}

// AddDir adds a directory and its parents to the in-memory filesystem.
func (mfs *MemoryFileSystem) AddDir(path string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(path)
	mfs.ensureDirectoriesExist(absPath)
	mfs.nodes[absPath] = &memoryNode{isDir: true, modTime: time.Now()}
}

// Content returns the content of the file at path and whether it exists.
func (mfs *MemoryFileSystem) Content(path string) (string, bool) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	node, ok := mfs.nodes[mfs.abs(path)]
	if !ok || node.isDir {
		return "", false
	}
	return string(node.content), true
}

// Exists reports whether anything is stored at path.
func (mfs *MemoryFileSystem) Exists(path string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	_, ok := mfs.nodes[mfs.abs(path)]
	return ok
}

func (mfs *MemoryFileSystem) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(mfs.root, path)
}

// ensureDirectoriesExist creates directory entries for all parent directories.
// Callers must hold the write lock or own mfs exclusively.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(path string) {
	dir := filepath.Dir(path)
	if _, exists := mfs.nodes[dir]; exists {
		return
	}
	mfs.nodes[dir] = &memoryNode{isDir: true, modTime: time.Now()}
	if filepath.Dir(dir) != dir {
		mfs.ensureDirectoriesExist(dir)
	}
}

// parentDir checks that the parent of path exists and is a directory.
func (mfs *MemoryFileSystem) parentDir(op, path string) error {
	parent, ok := mfs.nodes[filepath.Dir(path)]
	if !ok {
		return &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	if !parent.isDir {
		return &fs.PathError{Op: op, Path: path, Err: errNotDir}
	}
	return nil
}

func (mfs *MemoryFileSystem) Stat(path string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	path = mfs.abs(path)
	node, ok := mfs.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return node.info(path), nil
}

// Lstat is Stat; the in-memory filesystem has no symlinks.
func (mfs *MemoryFileSystem) Lstat(path string) (FileInfo, error) {
	return mfs.Stat(path)
}

// SameFile compares the stored nodes behind two FileInfo values.
func (mfs *MemoryFileSystem) SameFile(a, b FileInfo) bool {
	ma, okA := a.(*memoryFileInfo)
	mb, okB := b.(*memoryFileInfo)
	return okA && okB && ma.node == mb.node
}

func (mfs *MemoryFileSystem) ReadDirNames(path string) ([]string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	path = mfs.abs(path)
	node, ok := mfs.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: errNotDir}
	}

	var names []string
	for p := range mfs.nodes {
		if p != path && filepath.Dir(p) == path {
			names = append(names, filepath.Base(p))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (mfs *MemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	path = mfs.abs(path)
	node, ok := mfs.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: errIsDir}
	}
	content := append([]byte(nil), node.content...)
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (mfs *MemoryFileSystem) CreateExclusive(path string) (io.WriteCloser, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	path = mfs.abs(path)
	if err := mfs.parentDir("open", path); err != nil {
		return nil, err
	}
	if _, ok := mfs.nodes[path]; ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrExist}
	}

	// The file is visible and empty until the writer closes.
	mfs.nodes[path] = &memoryNode{modTime: time.Now()}
	return &memoryWriter{fs: mfs, path: path}, nil
}

func (mfs *MemoryFileSystem) Rename(oldPath, newPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	oldPath, newPath = mfs.abs(oldPath), mfs.abs(newPath)
	node, ok := mfs.nodes[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if oldPath == newPath {
		return nil
	}
	if err := mfs.parentDir("rename", newPath); err != nil {
		return err
	}
	if target, ok := mfs.nodes[newPath]; ok && target.isDir {
		return &fs.PathError{Op: "rename", Path: newPath, Err: errIsDir}
	}

	if node.isDir {
		prefix := oldPath + string(filepath.Separator)
		moved := make(map[string]*memoryNode)
		for p, child := range mfs.nodes {
			if strings.HasPrefix(p, prefix) {
				moved[newPath+p[len(oldPath):]] = child
				delete(mfs.nodes, p)
			}
		}
		for p, child := range moved {
			mfs.nodes[p] = child
		}
	}
	delete(mfs.nodes, oldPath)
	mfs.nodes[newPath] = node
	return nil
}

func (mfs *MemoryFileSystem) Remove(path string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	path = mfs.abs(path)
	node, ok := mfs.nodes[path]
	if !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	if node.isDir {
		for p := range mfs.nodes {
			if p != path && filepath.Dir(p) == path {
				return &fs.PathError{Op: "remove", Path: path, Err: errDirNotEmpty}
			}
		}
	}
	delete(mfs.nodes, path)
	return nil
}

// memoryWriter buffers writes and commits them to the filesystem on Close
type memoryWriter struct {
	fs     *MemoryFileSystem
	path   string
	buf    bytes.Buffer
	closed bool
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	if w.closed {
		return fs.ErrClosed
	}
	w.closed = true

	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()

	if err := w.fs.parentDir("close", w.path); err != nil {
		return err
	}
	w.fs.nodes[w.path] = &memoryNode{content: w.buf.Bytes(), modTime: time.Now()}
	return nil
}

var _ FileSystem = (*MemoryFileSystem)(nil)
