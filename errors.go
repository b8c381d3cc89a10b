package cmparith

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for errors.Is-style matching against the three arithmetic
// error kinds, the syntax-error kind this spec adds for malformed decimal
// literals (SPEC_FULL.md §4.11), and the narrowing kind Widen reports. Each concrete error type below wraps one
// of these via Unwrap, following the sentinel + wrap convention used
// throughout the ambient stack this module borrows from.
var (
	ErrOverflow          = errors.New("overflow")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNegativeFactorial = errors.New("negative factorial")
	ErrSyntax            = errors.New("invalid syntax")
	ErrNarrows           = errors.New("destination width narrower than source")
)

// OverflowError reports that a fixed-width result could not be represented.
// Wrapped carries the truncated result for diagnostics (spec.md §7).
type OverflowError struct {
	Wrapped Integer
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("overflow (wrapped result %s)", e.Wrapped.String())
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// DivisionByZeroError reports that a division or modulo operation's
// divisor was zero.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "division by zero" }
func (e *DivisionByZeroError) Unwrap() error { return ErrDivisionByZero }

// NegativeFactorialError reports that Factorial was called on a negative
// operand.
type NegativeFactorialError struct{}

func (e *NegativeFactorialError) Error() string { return "negative factorial" }
func (e *NegativeFactorialError) Unwrap() error { return ErrNegativeFactorial }

// SyntaxError reports that a decimal literal did not match
// [+-]?[0-9]+ (spec.md §6).
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("invalid syntax: %q", e.Input) }
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// NarrowingError reports a rejected Widen call: the destination's width
// mode is not at least as wide as the source's (spec.md §3).
type NarrowingError struct {
	Dst, Src Width
}

func (e *NarrowingError) Error() string {
	return fmt.Sprintf("cannot widen %s into %s", e.Src, e.Dst)
}
func (e *NarrowingError) Unwrap() error { return ErrNarrows }
