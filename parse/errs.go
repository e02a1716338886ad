package parse

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel every parse failure wraps; use errors.Is to
// test for it.
var ErrParse = errors.New("parse error")

// Error is a fatal lexical or syntactic failure, carrying the
// caller-supplied input label and the best-known 1-based line number.
type Error struct {
	Label string
	Line  int
	Err   error
}

func newError(label string, line int, format string, args ...any) *Error {
	return &Error{
		Label: label,
		Line:  line,
		Err:   fmt.Errorf(format, args...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Label, e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}
