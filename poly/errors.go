package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExponent is returned when an exponent is negative, non-integral or not finite.
	ErrInvalidExponent = errors.New("invalid exponent")

	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("division by the zero polynomial")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed polynomial")

	// ErrInvalidSearch is returned for an unusable root search range.
	ErrInvalidSearch = errors.New("invalid root search")

	// ErrInvalidSampling is returned for an unusable sampling range, step or sample count.
	ErrInvalidSampling = errors.New("invalid sampling")

	// ErrInvalidParameters is returned when RootFinderParameters fail validation.
	ErrInvalidParameters = errors.New("invalid parameters")
)

// ParseError describes a failure of Parse.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
	// Err is ErrParse for syntax errors and ErrInvalidExponent
	// for well-formed but unusable exponents.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot Parse %q: %s at offset %d", e.Input, e.Msg, e.Offset)
}

// Unwrap returns the underlying error kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrParse regardless of the underlying kind.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
