package services

import (
	"errors"
	"fmt"
)

// Input-side failures. All of these are detected before any model call
// is made, so a caller hitting one of them never consumed quota.
var (
	ErrMissingInput      = errors.New("required input is missing")
	ErrUnsupportedFormat = errors.New("unsupported resume format: only PDF and plain text are accepted")
	ErrFileRead          = errors.New("failed to read resume file")
)

// Session failures.
var (
	ErrNoSession   = errors.New("no active interview session")
	ErrSessionBusy = errors.New("a reply is already being generated for this session")
)

// GenerationError wraps an upstream model failure so callers can log
// the cause while showing users a generic notice.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newGenerationError(op string, err error) error {
	return &GenerationError{Op: op, Err: err}
}
