package cmparith

// Factorial returns x! (spec.md §4.7). It fails with NegativeFactorialError
// for a negative x. For x in {0, 1} the result is 1. Otherwise it follows
// the source algorithm noted in spec.md §9: start the accumulator at x
// itself and multiply in 2, 3, ..., x-1, which is equivalent to
// x * 2 * 3 * ... * (x-1) = x!. Overflow (fixed mode only) is reported only
// after the loop completes, carrying the final wrapped magnitude, per
// spec.md §4.7 and the Open Question decision in SPEC_FULL.md §9: the loop
// is not short-circuited on first overflow.
func Factorial(x Integer) (Integer, error) {
	if x.IsNegative() {
		return x, &NegativeFactorialError{}
	}

	w := x.width
	zero, one, two := Zero(w), One(w), smallInt(2, w)
	if x.Equal(zero) || x.Equal(one) {
		return One(w), nil
	}

	result := x
	overflowed := false
	for m := two; !m.Equal(x); {
		r, err := Mul(result, m)
		if err != nil {
			overflowed = true
		}
		result = r

		next, err := Add(m, one)
		if err != nil {
			overflowed = true
		}
		m = next
	}

	if overflowed {
		return result, &OverflowError{Wrapped: result}
	}
	return result, nil
}
