package cmparith

// New parses s as a signed decimal literal ([+-]?[0-9]+, spec.md §6) at
// width w. Overflow (fixed mode only) returns *OverflowError carrying the
// wrapped result, mirroring Add/Mul/Factorial: the returned Integer is
// still usable. A string that doesn't match the grammar returns
// *SyntaxError and the zero value at w.
func New(w Width, s string) (Integer, error) {
	if len(s) == 0 {
		return Zero(w), &SyntaxError{Input: s}
	}

	neg := false
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	if i == len(s) {
		return Zero(w), &SyntaxError{Input: s}
	}
	for k := i; k < len(s); k++ {
		if s[k] < '0' || s[k] > '9' {
			return Zero(w), &SyntaxError{Input: s}
		}
	}

	result := Zero(w)
	ten := smallInt(10, w)
	overflowed := false
	for k := i; k < len(s); k++ {
		digit := smallInt(s[k]-'0', w)

		r, err := Mul(result, ten)
		if err != nil {
			overflowed = true
		}
		r, err = Add(r, digit)
		// A magnitude of exactly 2^(8W-1) overflows the positive range but
		// is the most negative value once negated, so a '-' literal that
		// ends on it is representable.
		if err != nil && !(neg && k == len(s)-1 && !overflowed && Neg(r).Equal(r)) {
			overflowed = true
		}
		result = r
	}

	if neg {
		result = Neg(result)
	}
	if overflowed {
		return result, &OverflowError{Wrapped: result}
	}
	return result, nil
}

// String renders x as a canonical decimal literal: no leading zeros (other
// than "0" itself), an optional leading '-', no thousands separators
// (spec.md §4.8).
func (x Integer) String() string {
	w := x.width
	zero := Zero(w)
	if x.Equal(zero) {
		return "0"
	}

	neg := x.IsNegative()
	cur := absInteger(x)
	ten := smallInt(10, cur.width)

	digits := make([]byte, 0, len(cur.bits)*3)
	for !cur.Equal(Zero(cur.width)) {
		q, r, _ := divMod(cur, ten)
		digits = append(digits, '0'+r.bits[0])
		cur = q
	}

	out := make([]byte, 0, len(digits)+1)
	if neg {
		out = append(out, '-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// Widen returns src's value re-tagged at dst's width mode, requiring
// dst.Width() to already be at least as wide as src.Width() in the sense
// of combine (spec.md §3: "assigning a value of width R into a variable of
// width L requires L >= R"). It errors rather than truncating; there is no
// implicit narrowing conversion.
func Widen(dst, src Integer) (Integer, error) {
	if combine(dst.width, src.width) != dst.width {
		return dst, &NarrowingError{Dst: dst.width, Src: src.width}
	}
	targetAW := dst.ActualWidth()
	if dst.width.fixed {
		return Integer{bits: signExtend(src.bits, targetAW), width: dst.width}, nil
	}
	if len(src.bits) > targetAW {
		targetAW = len(src.bits)
	}
	return Integer{bits: signExtend(src.bits, targetAW), width: dst.width}, nil
}
