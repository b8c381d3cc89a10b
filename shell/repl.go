package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"

	"github.com/skafara/cmparith"
)

const prompt = "> "

// REPL is a line-oriented read-eval-print loop over a single input and
// output stream, per spec.md §5 and §6. It owns one Bank for the lifetime
// of the process.
type REPL struct {
	width cmparith.Width
	bank  Bank
	in    *bufio.Scanner
	out   io.Writer
}

// New constructs a REPL reading lines from in and writing prompts, results
// and errors to out, at width mode w. Every literal entered at the prompt
// and every bank-stored result is interpreted at w.
func New(w cmparith.Width, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		width: w,
		in:    bufio.NewScanner(in),
		out:   colorable.NewNonColorable(out),
	}
}

// Run reads and executes lines until EOF or an "exit" line, writing a
// prompt before each read and a result or "[ERROR] <message>" line after
// each command (spec.md §6). It returns nil on a clean exit (EOF or
// "exit"); it never returns a non-nil error for a malformed command line,
// since those are reported to out and the loop continues.
func (r *REPL) Run() error {
	for {
		fmt.Fprint(r.out, prompt)
		if !r.in.Scan() {
			return r.in.Err()
		}
		raw := r.in.Text()

		// The untrimmed line must equal "exit" exactly: "  exit  " is not
		// recognized as the exit command (spec.md §9 Open Question #1,
		// preserved as-is; see SPEC_FULL.md §9 decision 1).
		if raw == "exit" {
			return nil
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		r.runLine(line)
	}
}

func (r *REPL) runLine(line string) {
	if line == "bank" {
		r.printBank()
		return
	}

	result, err := r.eval(line)
	if err != nil {
		// A failed command saves nothing: the original (MPTerm.hpp's
		// Run) throws out of op(mpterm) before Save_Result ever runs, so
		// the bank holds only non-failed results (spec.md §6).
		r.printError(err)
		return
	}
	r.bank.Push(result)
	fmt.Fprintf(r.out, "$1 = %s\n", result.String())
}

func (r *REPL) printBank() {
	for i := 1; i <= r.bank.Len(); i++ {
		v, _ := r.bank.Get(i)
		fmt.Fprintf(r.out, "$%d = %s\n", i, v.String())
	}
}

// printError prints the canonical display phrase for err, matching the
// literal strings the original throws (mparith.hpp/MPTerm.hpp) rather than
// the core's own lowercase Go error text: "Division By Zero", "Factorial
// Of Negative Number", "Overflow Detected [<wrapped>]", "Out Of Bank
// Range", "Invalid Command Format" (spec.md §8).
func (r *REPL) printError(err error) {
	fmt.Fprintf(r.out, "[ERROR] %s\n", errorPhrase(err))
}

func errorPhrase(err error) string {
	var overflow *cmparith.OverflowError
	if errors.As(err, &overflow) {
		return fmt.Sprintf("Overflow Detected [%s]", overflow.Wrapped.String())
	}
	var divZero *cmparith.DivisionByZeroError
	if errors.As(err, &divZero) {
		return "Division By Zero"
	}
	var negFact *cmparith.NegativeFactorialError
	if errors.As(err, &negFact) {
		return "Factorial Of Negative Number"
	}
	var outOfRange *OutOfBankRangeError
	if errors.As(err, &outOfRange) {
		return "Out Of Bank Range"
	}
	// SyntaxError and InvalidCommandFormatError both mean the line didn't
	// match the grammar the shell accepts (the original's regex rejects
	// a malformed literal the same way it rejects a malformed line,
	// since numerals are validated by the same pattern as the rest of
	// the command).
	return "Invalid Command Format"
}
