package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vvka-141/fman/internal/tui"
	"github.com/vvka-141/fman/internal/ui"
	"github.com/vvka-141/fman/pkg/fman"
)

// Outcome tells the loop whether to keep reading after a line.
type Outcome int

const (
	Continue Outcome = iota
	Exit
)

// Config holds the streams and presentation settings of a REPL.
type Config struct {
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
	Theme     tui.Theme
	Logger    fman.Logger
}

// REPL reads commands from Input until end of input, an exit command, or
// cancellation of the context passed to Run.
type REPL struct {
	session    *Session
	dispatcher *Dispatcher
	input      *ui.LineReader
	out        io.Writer
	errOut     io.Writer
	theme      tui.Theme
	logger     fman.Logger
}

// New creates a REPL for session. Panics if a stream, the logger, or an
// argument is nil.
func New(cfg Config, session *Session, dispatcher *Dispatcher) *REPL {
	if cfg.Input == nil || cfg.Output == nil || cfg.ErrOutput == nil {
		panic("streams cannot be nil")
	}
	if cfg.Logger == nil {
		panic("logger cannot be nil")
	}
	if session == nil || dispatcher == nil {
		panic("session and dispatcher cannot be nil")
	}
	return &REPL{
		session:    session,
		dispatcher: dispatcher,
		input:      ui.NewLineReader(cfg.Input),
		out:        cfg.Output,
		errOut:     cfg.ErrOutput,
		theme:      cfg.Theme,
		logger:     cfg.Logger,
	}
}

// Session returns the session the REPL operates on.
func (r *REPL) Session() *Session { return r.session }

// Run prints the banner and serves commands until the session ends.
// End of input, the exit command and cancellation of ctx all end the session
// with a farewell and a nil error. Only a failure to read input is returned.
func (r *REPL) Run(ctx context.Context) error {
	defer r.input.Close()

	fmt.Fprintln(r.out, r.theme.Title(fmt.Sprintf(fman.MsgWelcome, r.session.Username())))
	r.footer()

	for {
		fmt.Fprint(r.out, r.theme.Prompt(fman.Prompt))

		line, err := r.input.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				// The cursor is still on the prompt line.
				fmt.Fprintln(r.out)
				r.farewell()
				return nil
			}
			r.logger.Error("reading input: %v", err)
			return fman.IO("read", "", err)
		}

		if r.Execute(ctx, line) == Exit {
			r.farewell()
			return nil
		}
	}
}

// Execute runs one input line to completion. Failures are reported on the
// error stream and never end the session. Every line except exit is
// followed by the footer, including a blank one.
func (r *REPL) Execute(ctx context.Context, line string) Outcome {
	cmd, err := Parse(line)
	if err == nil {
		if cmd.Name == "" {
			err = fman.InvalidInput("", "empty command")
		} else {
			err = r.dispatcher.Dispatch(ctx, r.session, cmd, r.out)
		}
	}

	if errors.Is(err, errExit) {
		return Exit
	}
	if err != nil {
		r.logger.Verbose("%v", err)
		fmt.Fprintln(r.errOut, r.theme.Error(fman.UserMessage(err)))
	}
	r.footer()
	return Continue
}

func (r *REPL) footer() {
	fmt.Fprintf(r.out, fman.MsgCurrentDir+"\n", r.theme.Path(r.session.Dir()))
}

func (r *REPL) farewell() {
	fmt.Fprintf(r.out, fman.MsgFarewell+"\n", r.session.Username())
}
