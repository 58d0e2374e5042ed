package realpoly

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-realpoly/field"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is the zero polynomial.
	ErrDivisionByZero = field.ErrDivisionByZero

	// ErrParse matches every *ParseError through errors.Is.
	ErrParse = errors.New("malformed polynomial expression")
)

// ParseError describes the first fragment a strict Parser could not accept,
// or a fragment a lenient Parser skipped.
type ParseError struct {
	// Pos is the byte offset of Fragment in the input with whitespace removed.
	Pos int
	// Fragment is the offending text.
	Fragment string
	// Reason explains why the fragment was rejected.
	Reason string
	// Err is the underlying numeric conversion error, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error at offset %d near %q: %s", e.Pos, e.Fragment, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
