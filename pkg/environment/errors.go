package environment

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingDelimiter indicates that a variable specification doesn't
	// contain an equal sign separating its name from its value.
	ErrMissingDelimiter = errors.New("missing '=' delimiter")
	// ErrEmptyName indicates that a variable specification starts with an
	// equal sign.
	ErrEmptyName = errors.New("empty variable name")
	// ErrInvalidName indicates that a variable name contains whitespace or an
	// equal sign.
	ErrInvalidName = errors.New("invalid variable name")
)

// ParseError describes a variable specification that couldn't be parsed. Its
// underlying error is one of ErrMissingDelimiter, ErrEmptyName, or
// ErrInvalidName and can be tested with errors.Is.
type ParseError struct {
	// Specification is the offending NAME=VALUE text.
	Specification string
	// Err is the reason that parsing failed.
	Err error
}

// Error implements error.Error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid variable specification (%q): %v", e.Specification, e.Err)
}

// Unwrap returns the reason that parsing failed.
func (e *ParseError) Unwrap() error {
	return e.Err
}
