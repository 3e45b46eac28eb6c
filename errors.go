package nanolisp

import (
	"errors"
	"fmt"
)

// Every failure is "no result" to a caller of Run; the sentinels only let
// tests and the driver tell the causes apart with errors.Is.
var (
	ErrSyntax           = errors.New("syntax error")
	ErrUnbound          = errors.New("unbound symbol")
	ErrArity            = errors.New("wrong number of args")
	ErrType             = errors.New("type mismatch")
	ErrEmptyApplication = errors.New("empty application")
	ErrDepth            = errors.New("maximum evaluation depth exceeded")
)

// ErrUnterminated is returned when input ends inside a list. The REPL uses it
// to keep reading continuation lines.
var ErrUnterminated = fmt.Errorf("%w: unterminated list", ErrSyntax)
