package fman

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := nav.ChangeDirectory(ctx, dir, "docs")
//	if errors.Is(err, fman.ErrNotDirectory) {
//	    // Handle a file passed where a directory was expected
//	}
var (
	// ErrInvalidInput indicates an unknown command, a wrong number of arguments,
	// or an unrecognized option.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the target path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotDirectory indicates a directory was required but the target is not one.
	ErrNotDirectory = errors.New("not a directory")

	// ErrIsDirectory indicates a file was required but the target is a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrAlreadyExists indicates the target of an exclusive create already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrAtRoot indicates navigation above the filesystem root was requested.
	ErrAtRoot = errors.New("already at filesystem root")

	// ErrSamePath indicates a copy or move whose destination is its own source.
	ErrSamePath = errors.New("source and destination are the same file")
)

// Kind classifies an operation failure.
type Kind int

const (
	// KindValidation covers missing targets, wrong target types and invalid input.
	KindValidation Kind = iota
	// KindIO covers failures reported by the filesystem, digest or codec layers.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// OpError records a failed operation together with the path it touched.
type OpError struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Validation wraps err as a validation failure of op on path.
func Validation(op, path string, err error) error {
	return &OpError{Op: op, Path: path, Kind: KindValidation, Err: err}
}

// IO wraps err as an I/O failure of op on path.
func IO(op, path string, err error) error {
	return &OpError{Op: op, Path: path, Kind: KindIO, Err: err}
}

// InvalidInput returns a validation error carrying ErrInvalidInput.
func InvalidInput(op, detail string) error {
	return &OpError{Op: op, Kind: KindValidation, Err: fmt.Errorf("%w: %s", ErrInvalidInput, detail)}
}

// FromFS classifies an error returned by a filesystem primitive.
// Missing targets and exclusive-create collisions become validation errors
// carrying ErrNotFound or ErrAlreadyExists; everything else is an I/O error.
func FromFS(op, path string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return Validation(op, path, fmt.Errorf("%w: %w", ErrNotFound, err))
	case errors.Is(err, fs.ErrExist):
		return Validation(op, path, fmt.Errorf("%w: %w", ErrAlreadyExists, err))
	default:
		return IO(op, path, err)
	}
}

// KindOf reports the kind of err. Errors that carry no OpError are treated as I/O failures.
func KindOf(err error) Kind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	if errors.Is(err, ErrInvalidInput) {
		return KindValidation
	}
	return KindIO
}

// UserMessage collapses err into the flat message shown at the prompt.
func UserMessage(err error) string {
	if errors.Is(err, ErrInvalidInput) {
		return MsgInvalidInput
	}
	return MsgOperationFailed
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, ExitUsageError (2) for command line
// misuse reported by cobra, and ExitGeneralError (1) for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	errStr := err.Error()
	for _, marker := range usageErrorMarkers {
		if strings.Contains(errStr, marker) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorMarkers = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
