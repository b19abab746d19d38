package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vvka-141/fman/internal/checksum"
	"github.com/vvka-141/fman/internal/compression"
	"github.com/vvka-141/fman/internal/files/filesystem"
	"github.com/vvka-141/fman/internal/files/fileops"
	"github.com/vvka-141/fman/internal/navigation"
	"github.com/vvka-141/fman/internal/sysinfo"
	"github.com/vvka-141/fman/internal/tui"
	"github.com/vvka-141/fman/pkg/fman"
)

// errExit is returned by the exit command to end the session.
var errExit = errors.New("exit requested")

// Services are the operations the dispatcher routes commands to.
type Services struct {
	Files       *fileops.Service
	Navigator   *navigation.Navigator
	Hasher      *checksum.FileHasher
	Compression *compression.Service
	Host        sysinfo.Host
}

// NewServices wires every service against one filesystem.
func NewServices(fsys filesystem.FileSystem, host sysinfo.Host, logger fman.Logger) Services {
	return Services{
		Files:       fileops.NewService(fsys, logger),
		Navigator:   navigation.New(fsys),
		Hasher:      checksum.NewFileHasher(fsys, checksum.New()),
		Compression: compression.NewService(fsys, logger),
		Host:        host,
	}
}

type handler func(d *Dispatcher, ctx context.Context, sess *Session, args []string, out io.Writer) error

// command binds a name to its argument count and handler. A variadic command
// accepts at least arity arguments and ignores the rest.
type command struct {
	arity    int
	variadic bool
	run      handler
}

var commands = map[string]command{
	"up":         {arity: 0, run: (*Dispatcher).up},
	"cd":         {arity: 1, run: (*Dispatcher).cd},
	"ls":         {arity: 0, run: (*Dispatcher).ls},
	"cat":        {arity: 1, run: (*Dispatcher).cat},
	"add":        {arity: 1, run: (*Dispatcher).add},
	"rn":         {arity: 2, run: (*Dispatcher).rn},
	"rm":         {arity: 1, run: (*Dispatcher).rm},
	"cp":         {arity: 2, run: (*Dispatcher).cp},
	"mv":         {arity: 2, run: (*Dispatcher).mv},
	"os":         {arity: 1, run: (*Dispatcher).os},
	"hash":       {arity: 1, run: (*Dispatcher).hash},
	"compress":   {arity: 2, run: (*Dispatcher).compress},
	"decompress": {arity: 2, run: (*Dispatcher).decompress},
	"exit":       {arity: 0, variadic: true, run: (*Dispatcher).exit},
	".exit":      {arity: 0, variadic: true, run: (*Dispatcher).exit},
}

// Dispatcher routes parsed commands to services and prints their results.
type Dispatcher struct {
	svc    Services
	theme  tui.Theme
	logger fman.Logger
}

// NewDispatcher creates a Dispatcher. Panics if a service or the logger is nil.
func NewDispatcher(svc Services, theme tui.Theme, logger fman.Logger) *Dispatcher {
	if svc.Files == nil || svc.Navigator == nil || svc.Hasher == nil || svc.Compression == nil || svc.Host == nil {
		panic("services cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Dispatcher{svc: svc, theme: theme, logger: logger}
}

// Dispatch runs cmd to completion, writing its output to out. Unknown names
// and wrong argument counts are invalid input. Exit ignores any arguments.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *Session, cmd Command, out io.Writer) error {
	c, ok := commands[cmd.Name]
	if !ok {
		return fman.InvalidInput(cmd.Name, "unknown command")
	}
	if len(cmd.Args) < c.arity || (!c.variadic && len(cmd.Args) != c.arity) {
		return fman.InvalidInput(cmd.Name, fmt.Sprintf("expected %d arguments, got %d", c.arity, len(cmd.Args)))
	}
	return c.run(d, ctx, sess, cmd.Args, out)
}

func (d *Dispatcher) up(ctx context.Context, sess *Session, _ []string, _ io.Writer) error {
	dir, err := d.svc.Navigator.GoUp(ctx, sess.Dir())
	if err != nil {
		return err
	}
	sess.adopt(dir)
	return nil
}

func (d *Dispatcher) cd(ctx context.Context, sess *Session, args []string, _ io.Writer) error {
	dir, err := d.svc.Navigator.ChangeDirectory(ctx, sess.Dir(), args[0])
	if err != nil {
		return err
	}
	sess.adopt(dir)
	return nil
}

func (d *Dispatcher) ls(ctx context.Context, sess *Session, _ []string, out io.Writer) error {
	entries, err := d.svc.Files.ListFiles(ctx, sess.Dir())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, d.theme.Listing(entries))
	return nil
}

func (d *Dispatcher) cat(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	if err := d.svc.Files.ReadFile(ctx, sess.Dir(), args[0], out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}

func (d *Dispatcher) add(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	return d.report(out)(d.svc.Files.AddFile(ctx, sess.Dir(), args[0]))
}

func (d *Dispatcher) rn(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	return d.report(out)(d.svc.Files.RenameFile(ctx, sess.Dir(), args[0], args[1]))
}

func (d *Dispatcher) rm(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	return d.report(out)(d.svc.Files.DeleteFile(ctx, sess.Dir(), args[0]))
}

func (d *Dispatcher) cp(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	return d.report(out)(d.svc.Files.CopyFile(ctx, sess.Dir(), args[0], args[1]))
}

func (d *Dispatcher) mv(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	return d.report(out)(d.svc.Files.MoveFile(ctx, sess.Dir(), args[0], args[1]))
}

func (d *Dispatcher) os(ctx context.Context, _ *Session, args []string, out io.Writer) error {
	lines, err := sysinfo.Query(ctx, d.svc.Host, args[0])
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func (d *Dispatcher) hash(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	digest, err := d.svc.Hasher.CalculateHash(ctx, sess.Dir(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, digest)
	return nil
}

func (d *Dispatcher) compress(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	return d.report(out)(d.svc.Compression.CompressFile(ctx, sess.Dir(), args[0], args[1]))
}

func (d *Dispatcher) decompress(ctx context.Context, sess *Session, args []string, out io.Writer) error {
	return d.report(out)(d.svc.Compression.DecompressFile(ctx, sess.Dir(), args[0], args[1]))
}

func (d *Dispatcher) exit(context.Context, *Session, []string, io.Writer) error {
	return errExit
}

// report prints a service's success message, or passes its error through.
func (d *Dispatcher) report(out io.Writer) func(msg string, err error) error {
	return func(msg string, err error) error {
		if err != nil {
			return err
		}
		fmt.Fprintln(out, d.theme.Success(msg))
		return nil
	}
}
