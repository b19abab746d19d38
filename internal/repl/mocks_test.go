package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/fman/internal/files/filesystem"
	"github.com/vvka-141/fman/internal/logging"
	"github.com/vvka-141/fman/internal/sysinfo"
	"github.com/vvka-141/fman/internal/tui"
)

const home = "/home/user"

var errInjected = errors.New("injected failure")

type fakeHost struct {
	arch    string
	cpus    []sysinfo.CPU
	cpusErr error
}

func (h *fakeHost) EOL() string                                 { return "\n" }
func (h *fakeHost) CPUs(context.Context) ([]sysinfo.CPU, error) { return h.cpus, h.cpusErr }
func (h *fakeHost) HomeDir() (string, error)                    { return home, nil }
func (h *fakeHost) Username() (string, error)                   { return "ada", nil }
func (h *fakeHost) Arch() string                                { return h.arch }

func newFakeHost() *fakeHost {
	return &fakeHost{
		arch: "x64",
		cpus: []sysinfo.CPU{{Model: "Test CPU", MHz: 2400}},
	}
}

// failingRemoveFS refuses to delete anything.
type failingRemoveFS struct {
	filesystem.FileSystem
}

func (f *failingRemoveFS) Remove(string) error { return errInjected }

// harness runs a REPL over an in-memory filesystem rooted at home.
type harness struct {
	fs     *filesystem.MemoryFileSystem
	host   *fakeHost
	repl   *REPL
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem(home)
	return newHarnessFS(t, mfs, mfs, input)
}

// newHarnessFS runs commands against fsys while mfs stays available for setup
// and inspection.
func newHarnessFS(t *testing.T, mfs *filesystem.MemoryFileSystem, fsys filesystem.FileSystem, input string) *harness {
	t.Helper()
	h := &harness{
		fs:     mfs,
		host:   newFakeHost(),
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	logger := logging.NewNullLogger()
	dispatcher := NewDispatcher(NewServices(fsys, h.host, logger), tui.NewTheme(false), logger)
	h.repl = New(Config{
		Input:     strings.NewReader(input),
		Output:    h.out,
		ErrOutput: h.errOut,
		Theme:     tui.NewTheme(false),
		Logger:    logger,
	}, NewSession(home, "ada"), dispatcher)
	return h
}

// exec runs line and returns what it printed, resetting the buffers.
func (h *harness) exec(line string) (stdout, stderr string, outcome Outcome) {
	h.out.Reset()
	h.errOut.Reset()
	outcome = h.repl.Execute(context.Background(), line)
	return h.out.String(), h.errOut.String(), outcome
}
