package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fman/internal/files/filesystem"
	"github.com/vvka-141/fman/internal/logging"
	"github.com/vvka-141/fman/internal/repl"
	"github.com/vvka-141/fman/internal/sysinfo"
	"github.com/vvka-141/fman/internal/tui"
	"github.com/vvka-141/fman/pkg/fman"
)

// sessionOptions carries everything a session needs from the process.
type sessionOptions struct {
	username string
	styled   bool
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	fs       filesystem.FileSystem
	host     sysinfo.Host
	logger   fman.Logger
	getwd    func() (string, error)
}

func runSession(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	logger, closeLogger, err := newLogger(rootFlags.logFile, verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLogger()

	// Interrupts end the session the same way end of input does.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startSession(ctx, sessionOptions{
		username: rootFlags.username,
		styled:   tui.IsStyled(),
		in:       cmd.InOrStdin(),
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		fs:       filesystem.NewOSFileSystem(),
		host:     sysinfo.NewOSHost(),
		logger:   logger,
		getwd:    os.Getwd,
	})
}

func startSession(ctx context.Context, opts sessionOptions) error {
	start, err := startDirectory(opts)
	if err != nil {
		return err
	}
	opts.logger.Verbose("starting in %s", start)

	theme := tui.NewTheme(opts.styled)
	services := repl.NewServices(opts.fs, opts.host, opts.logger)
	r := repl.New(repl.Config{
		Input:     opts.in,
		Output:    opts.out,
		ErrOutput: opts.errOut,
		Theme:     theme,
		Logger:    opts.logger,
	}, repl.NewSession(start, opts.username), repl.NewDispatcher(services, theme, opts.logger))

	return r.Run(ctx)
}

// startDirectory returns the home directory, or the working directory when
// the home directory is unknown or unusable.
func startDirectory(opts sessionOptions) (string, error) {
	home, err := opts.host.HomeDir()
	if err == nil {
		if info, statErr := opts.fs.Stat(home); statErr == nil && info.IsDir() {
			return home, nil
		}
		opts.logger.Verbose("home directory %s is not usable", home)
	} else {
		opts.logger.Verbose("home directory unknown: %v", err)
	}

	wd, err := opts.getwd()
	if err != nil {
		return "", fmt.Errorf("no usable start directory: %w", err)
	}
	return wd, nil
}

// newLogger returns the file logger when path is set, otherwise a console
// logger on errOut. The returned func flushes and must always be called.
func newLogger(path string, verbose bool, errOut io.Writer) (fman.Logger, func(), error) {
	if path == "" {
		return logging.NewConsoleLoggerTo(errOut, verbose), func() {}, nil
	}
	logger, err := logging.NewFileLogger(path, verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}
