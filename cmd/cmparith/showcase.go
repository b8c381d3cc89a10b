package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/skafara/cmparith"
)

// runShowcase prints a fixed script of sample computations, per
// SPEC_FULL.md §6.3 mode 3: a large product and 23! at unlimited width,
// then at fixed 32-bit width an overflowing addition and a division by
// zero with its error cause.
func runShowcase(w io.Writer) {
	fmt.Fprintln(w, "-- unlimited width --")
	u := cmparith.Unlimited
	a, _ := cmparith.New(u, "123456789123456789123456789123456789")
	b, _ := cmparith.New(u, "987654321987654321987654321")
	showBinary(w, "Mul", cmparith.Neg(a), b, cmparith.Mul)

	factArg, _ := cmparith.New(u, "23")
	f, err := cmparith.Factorial(factArg)
	printResult(w, "23!", f, err)

	fmt.Fprintln(w, "-- fixed 32-bit width --")
	fw := cmparith.FixedWidth(4)
	x, _ := cmparith.New(fw, "2147483647")
	one := cmparith.One(fw)
	showBinary(w, "Add", x, one, cmparith.Add)

	zero := cmparith.Zero(fw)
	q, err := cmparith.Div(x, zero)
	printResult(w, "Div by zero", q, err)
	if err != nil {
		fmt.Fprintf(w, "  cause: %+v\n", errors.Cause(err))
	}
}

func showBinary(w io.Writer, name string, a, b cmparith.Integer, op func(cmparith.Integer, cmparith.Integer) (cmparith.Integer, error)) {
	r, err := op(a, b)
	printResult(w, fmt.Sprintf("%s(%s, %s)", name, a.String(), b.String()), r, err)
}

func printResult(w io.Writer, label string, r cmparith.Integer, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s = %s [ERROR] %v\n", label, r.String(), err)
		return
	}
	fmt.Fprintf(w, "%s = %s\n", label, r.String())
}
