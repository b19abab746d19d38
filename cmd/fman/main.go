package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/fman/internal/cli"
	"github.com/vvka-141/fman/pkg/fman"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(fman.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(fman.ExitCodeForError(err))
	}
}
