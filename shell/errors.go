package shell

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the two shell-level error kinds spec.md §7 adds on top
// of the core's (Overflow, DivisionByZero, NegativeFactorial, plus this
// module's Syntax and Narrowing): a bank reference outside the current bank, and a
// line that doesn't match the grammar at all.
var (
	ErrOutOfBankRange       = errors.New("bank reference out of range")
	ErrInvalidCommandFormat = errors.New("invalid command format")
)

// OutOfBankRangeError reports a $N reference where N is outside 1..Len().
type OutOfBankRangeError struct {
	Index int
	Len   int
}

func (e *OutOfBankRangeError) Error() string {
	return fmt.Sprintf("bank reference $%d out of range (bank holds %d entries)", e.Index, e.Len)
}

func (e *OutOfBankRangeError) Unwrap() error { return ErrOutOfBankRange }

// InvalidCommandFormatError reports a line matching none of the grammar
// productions in spec.md §6 (bank, N!, N1 op N2).
type InvalidCommandFormatError struct {
	Line string
}

func (e *InvalidCommandFormatError) Error() string {
	return fmt.Sprintf("invalid command format: %q", e.Line)
}

func (e *InvalidCommandFormatError) Unwrap() error { return ErrInvalidCommandFormat }
