package cmparith

// divMod implements the restoring long division of spec.md §4.6 on the
// positive magnitudes of a and b, recomposing the sign of the quotient
// only: the remainder is always the non-negative magnitude remainder,
// never negated to track the dividend's sign (spec.md §4.6 step 6 and the
// worked example "-123456 % 678" -> "60").
// A dividend at its width's most negative representable value has no
// positive magnitude to divide by in the same width (absInteger wraps it
// back to itself, per its own doc comment); divMod still runs to
// completion on that wrapped bit pattern rather than erroring, consistent
// with spec.md §4.6's "division never overflows."
func divMod(a, b Integer) (quotient, remainder Integer, err error) {
	rw := combine(a.width, b.width)
	if isZero(b.bits) {
		return Zero(rw), Zero(rw), &DivisionByZeroError{}
	}
	if isZero(a.bits) {
		return Zero(rw), Zero(rw), nil
	}

	signPositive := a.IsNegative() == b.IsNegative()
	ma, mb := absInteger(a), absInteger(b)
	x, y, rw, aw := prepareBinary(ma, mb)

	q := make([]byte, aw)
	r := make([]byte, aw)
	for i := aw*8 - 1; i >= 0; i-- {
		r = shiftLeftRaw(r, 1)
		setBit(r, 0, getBit(x.bits, i))
		diff := subRaw(r, y.bits)
		if diff[aw-1]&0x80 == 0 {
			r = diff
			setBit(q, i, 1)
		}
	}

	if !rw.fixed {
		q = shrink(q)
		r = shrink(r)
	}

	quotient = Integer{bits: q, width: rw}
	remainder = Integer{bits: r, width: rw}
	if !signPositive {
		quotient = Neg(quotient)
	}
	return quotient, remainder, nil
}

// Div returns a/b, truncated toward zero, promoted to the wider of a's and
// b's widths. Division never overflows (spec.md §4.6: "|q| <= |dividend|");
// the only error is DivisionByZeroError when b is zero.
func Div(a, b Integer) (Integer, error) {
	q, _, err := divMod(a, b)
	return q, err
}

// Mod returns a%b: the non-negative magnitude remainder of a/b (spec.md
// §4.6). The only error is DivisionByZeroError when b is zero.
func Mod(a, b Integer) (Integer, error) {
	_, r, err := divMod(a, b)
	return r, err
}
