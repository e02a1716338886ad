package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrInvalidChar  = errors.New("invalid character")
	ErrNumber       = errors.New("malformed number")
)

// ScanError is a lexical error located in the input document.
type ScanError struct {
	Err error
	Pos Pos
}

func NewScanError(e error, p *Pos) *ScanError {
	return &ScanError{Err: e, Pos: *p}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func unexpectedErr(what string, p *Pos) error {
	return NewScanError(fmt.Errorf("%w %q", ErrInvalidChar, what), p)
}
