package rational

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLiteral = errors.New("malformed literal")
	ErrInvalidDigit     = errors.New("invalid digit")
	ErrZeroDenominator  = errors.New("zero denominator")
	ErrOverflow         = errors.New("overflow")
)

// ErrorKind identifies the category of a [ParseError].
type ErrorKind uint8

const (
	// MalformedLiteral is a structural violation of the grammar:
	// empty input, misplaced or duplicated separators or markers,
	// or missing required digits.
	MalformedLiteral ErrorKind = iota
	// InvalidDigit is a character outside '0'-'9' where a digit was required.
	InvalidDigit
	// ZeroDenominator is a fraction whose denominator is zero.
	ZeroDenominator
	// Overflow is an intermediate or final value that does not fit
	// into the target integer type.
	Overflow
)

// String returns a stable label for the error kind.
func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidDigit:
		return ErrInvalidDigit
	case ZeroDenominator:
		return ErrZeroDenominator
	case Overflow:
		return ErrOverflow
	default:
		return ErrMalformedLiteral
	}
}

// ParseError is returned by [ParseFlexible], [Parse] and [New].
// Use [errors.Is] with ErrMalformedLiteral, ErrInvalidDigit,
// ErrZeroDenominator or ErrOverflow to test the kind.
type ParseError struct {
	Kind    ErrorKind
	Literal string // the input, empty for errors from [New]
	Msg     string // details, may be empty
}

func (e *ParseError) Error() string {
	var s string
	if e.Literal != "" {
		s = fmt.Sprintf("parsing %q: ", e.Literal)
	}
	s += e.Kind.String()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

// Unwrap returns the sentinel error matching e.Kind.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

func newParseError(kind ErrorKind, lit, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Literal: lit, Msg: fmt.Sprintf(format, args...)}
}
