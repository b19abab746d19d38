package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how fman presents its output.
type Mode int

const (
	// ModePlain is used for scripts, piped input and CI logs.
	ModePlain Mode = iota
	// ModeStyled is used when a human is at the terminal.
	ModeStyled
)

// DetectMode determines whether fman should colour its output.
//
// Returns ModePlain if:
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin or stdout is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode() Mode {
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}

	return ModeStyled
}

// IsStyled is a convenience function that returns true if output should be styled.
func IsStyled() bool {
	return DetectMode() == ModeStyled
}
