package builtins

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgs is returned when the prefix or count given to the tool
	// cannot be used to build a plan.
	ErrInvalidArgs = errors.New("invalid argument")
	// ErrIO is matched by every *TouchError.
	ErrIO = errors.New("io error")

	errIsDir = errors.New("is a directory")
)

// TouchError records the path that could not be created or touched.
type TouchError struct {
	Path string
	Op   string
	Err  error
}

func (e *TouchError) Error() string {
	return fmt.Sprintf("%v: cannot %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

func (e *TouchError) Unwrap() error { return e.Err }

func (e *TouchError) Is(target error) bool { return target == ErrIO }
