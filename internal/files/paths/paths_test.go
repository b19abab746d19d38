package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "home", "user")
	abs := filepath.Join(string(filepath.Separator), "etc", "hosts")

	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"no segments", nil, base},
		{"relative file", []string{"notes.txt"}, filepath.Join(base, "notes.txt")},
		{"parent", []string{".."}, filepath.Dir(base)},
		{"dot segments", []string{"./a/../b"}, filepath.Join(base, "b")},
		{"absolute segment", []string{abs}, abs},
		{"absolute restarts", []string{"docs", abs, "x"}, filepath.Join(abs, "x")},
		{"empty segment ignored", []string{"", "a"}, filepath.Join(base, "a")},
		{"dest dir plus basename", []string{"backup", "report.txt"}, filepath.Join(base, "backup", "report.txt")},
		{"above root stays at root", []string{"../../../../.."}, string(filepath.Separator)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(base, tt.segments...))
		})
	}
}

func TestResolve_AbsoluteIsIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "sub", "file.bin")

	for _, base := range []string{string(filepath.Separator), t.TempDir(), filepath.Join(t.TempDir(), "x", "..")} {
		first := Resolve(base, target)
		assert.Equal(t, target, first)
		assert.Equal(t, first, Resolve(base, first), "resolving an absolute path twice must not change it")
	}
}

func TestResolve_DoesNotConsultWorkingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.Equal(t, filepath.Join("docs", "notes.txt"), Resolve("docs", "notes.txt"))
}

func TestIsRoot(t *testing.T) {
	root := filepath.VolumeName(t.TempDir()) + string(filepath.Separator)

	assert.True(t, IsRoot(root))
	assert.False(t, IsRoot(t.TempDir()))
}
