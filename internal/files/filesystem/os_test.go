package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "notes.txt")
	os.WriteFile(filePath, []byte("hello"), 0644)

	fsys := NewOSFileSystem()

	info, err := fsys.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "notes.txt" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "notes.txt")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.Stat(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_ReadDirNames(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644)
	os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644)
	os.Mkdir(filepath.Join(dir, "sub"), 0755)

	names, err := NewOSFileSystem().ReadDirNames(dir)
	if err != nil {
		t.Fatalf("ReadDirNames() error = %v", err)
	}

	want := []string{"a.txt", "b.txt", "sub"}
	if len(names) != len(want) {
		t.Fatalf("ReadDirNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ReadDirNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestOSFileSystem_CreateExclusiveOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "data.bin")
	fsys := NewOSFileSystem()

	w, err := fsys.CreateExclusive(filePath)
	if err != nil {
		t.Fatalf("CreateExclusive() error = %v", err)
	}
	w.Write([]byte("payload"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	r, err := fsys.Open(filePath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()
	data, _ := io.ReadAll(r)
	if string(data) != "payload" {
		t.Errorf("content = %q, want %q", data, "payload")
	}
}

func TestOSFileSystem_CreateExclusive_Existing(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "taken.txt")
	os.WriteFile(filePath, []byte("keep"), 0644)

	_, err := NewOSFileSystem().CreateExclusive(filePath)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("CreateExclusive(existing) error = %v, want fs.ErrExist", err)
	}

	data, _ := os.ReadFile(filePath)
	if string(data) != "keep" {
		t.Errorf("existing file was modified: %q", data)
	}
}

func TestOSFileSystem_RenameAndRemove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	os.WriteFile(src, []byte("A"), 0644)
	fsys := NewOSFileSystem()

	if err := fsys.Rename(src, dst); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source should be gone after rename")
	}

	if err := fsys.Remove(dst); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := fsys.Remove(dst); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Remove(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_LstatDoesNotFollowSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "missing"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	fsys := NewOSFileSystem()

	if _, err := fsys.Stat(link); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(dangling) error = %v, want fs.ErrNotExist", err)
	}
	info, err := fsys.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat() error = %v", err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat() mode = %v, want symlink", info.Mode())
	}
}

func TestIsSameFile_OSSymlinkedDirectory(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644)
	os.WriteFile(filepath.Join(dir, "other.txt"), []byte("hello"), 0644)
	if err := os.Symlink(".", filepath.Join(dir, "here")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	fsys := NewOSFileSystem()

	alias := filepath.Join(dir, "here", "notes.txt")
	if !IsSameFile(fsys, filepath.Join(dir, "notes.txt"), alias) {
		t.Error("IsSameFile() = false for a path through a symlinked directory")
	}
	if IsSameFile(fsys, filepath.Join(dir, "notes.txt"), filepath.Join(dir, "other.txt")) {
		t.Error("IsSameFile() = true for distinct files")
	}
	if IsSameFile(fsys, filepath.Join(dir, "notes.txt"), filepath.Join(dir, "missing.txt")) {
		t.Error("IsSameFile() = true for a missing path")
	}
}

func TestIsSameFile_OSHardLink(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	os.WriteFile(src, []byte("hello"), 0644)
	if err := os.Link(src, filepath.Join(dir, "linked.txt")); err != nil {
		t.Skipf("hard links unavailable: %v", err)
	}

	if !IsSameFile(NewOSFileSystem(), src, filepath.Join(dir, "linked.txt")) {
		t.Error("IsSameFile() = false for a hard link")
	}
}
