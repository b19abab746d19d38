// Package ui reads operator input for the interactive session.
package ui

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// LineReader delivers input one line at a time while honoring context
// cancellation. A single background goroutine owns the underlying reader, so
// a cancelled ReadLine never loses or reorders a line for the next caller.
type LineReader struct {
	src       *bufio.Reader
	lines     chan lineResult
	done      chan struct{}
	once      sync.Once
	closeOnce sync.Once
}

// NewLineReader wraps r. Reading starts lazily on the first ReadLine.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		src:   bufio.NewReader(r),
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
}

// Close releases the background goroutine. A read already blocked on the
// underlying reader finishes first; its line is discarded. ReadLine returns
// io.EOF after Close.
func (r *LineReader) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}

// ReadLine blocks until a full line is available, the input ends, or ctx is
// done. The returned line has its trailing "\r\n" or "\n" removed. A final
// line without a newline is returned before io.EOF.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-r.done:
		return "", io.EOF
	default:
	}
	r.once.Do(func() { go r.pump() })

	select {
	case <-r.done:
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (r *LineReader) pump() {
	defer close(r.lines)
	for {
		input, err := r.src.ReadString('\n')
		if len(input) > 0 && !r.send(lineResult{line: strings.TrimRight(input, "\r\n")}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				r.send(lineResult{err: err})
			}
			return
		}
	}
}

// send hands res to ReadLine. It reports false once the reader is closed.
func (r *LineReader) send(res lineResult) bool {
	select {
	case r.lines <- res:
		return true
	case <-r.done:
		return false
	}
}
