package cmparith

// addRaw adds x and y, two equal-length word slices, and returns the sum of
// the same length together with the carry out of the top word and the
// fixed-width overflow flag (sign-pattern rule of spec.md §4.3: overflow
// iff the inputs agreed in sign and the result disagrees with them). It
// never grows or shrinks its result; self-extension for unlimited mode is
// the caller's responsibility (Add), since addRaw is also used internally
// by Mul and Div on buffers whose length must stay fixed for the duration
// of their shift-and-add / restoring-division loops.
func addRaw(x, y []byte) (sum []byte, carry, overflow bool) {
	n := len(x)
	sum = make([]byte, n)
	var c uint16
	for i := 0; i < n; i++ {
		s := uint16(x[i]) + uint16(y[i]) + c
		sum[i] = byte(s)
		c = s >> 8
	}
	sx := x[n-1]&0x80 != 0
	sy := y[n-1]&0x80 != 0
	sr := sum[n-1]&0x80 != 0
	return sum, c != 0, sx == sy && sr != sx
}

// negateRaw returns the two's complement of x (bitwise invert then add
// one), at the same length. It silently wraps for the most negative
// representable value, matching spec.md §6: unary minus "never" errors.
func negateRaw(x []byte) []byte {
	inv := make([]byte, len(x))
	for i, b := range x {
		inv[i] = ^b
	}
	one := make([]byte, len(x))
	one[0] = 1
	sum, _, _ := addRaw(inv, one)
	return sum
}

// subRaw returns x-y computed as x + (-y), ignoring carry and overflow, on
// equal-length buffers. Used internally where the working width is fixed
// for the life of an algorithm (Div's restoring subtraction, spec.md §4.6
// step 5: "diff = remainder - denominator ... overflow flags ignored
// here").
func subRaw(x, y []byte) []byte {
	sum, _, _ := addRaw(x, negateRaw(y))
	return sum
}

// Neg returns the two's complement negation of x, at x's own actual width
// and width mode (spec.md §6: "-a | none | same width | never"). Negation
// is exempted from the unlimited-mode shrink/grow pass that every other
// operation gets, exactly like Add: its result is always exactly as wide
// as its operand.
func Neg(x Integer) Integer {
	return Integer{bits: negateRaw(x.bits), width: x.width}
}

// Add returns a+b, promoted to the wider of a's and b's widths (spec.md
// §4.2, §4.3). In fixed mode, a sign-pattern overflow returns a non-nil
// *OverflowError carrying the wrapped (truncated) sum; the returned
// Integer is the wrapped sum regardless, so accumulators (Factorial,
// decimal parsing) can keep going without special-casing the error. In
// unlimited mode Add never errors: on a sign-pattern "overflow" it instead
// extends the buffer by one absorbing word, per spec.md §4.3.
func Add(a, b Integer) (Integer, error) {
	x, y, rw, aw := prepareBinary(a, b)
	sum, _, overflow := addRaw(x.bits, y.bits)
	if rw.fixed {
		res := Integer{bits: sum, width: rw}
		if overflow {
			return res, &OverflowError{Wrapped: res}
		}
		return res, nil
	}
	if overflow {
		fill := byte(0x00)
		if x.bits[aw-1]&0x80 != 0 {
			fill = 0xFF
		}
		sum = append(sum, fill)
	}
	return Integer{bits: sum, width: rw}, nil
}

// Sub returns a-b, computed as a + (-b) (spec.md §4.3). Unlike Add, Sub is
// not exempt from the unlimited-mode shrink pass (spec.md §3 invariant 2):
// its result is shrunk back down before being returned.
func Sub(a, b Integer) (Integer, error) {
	res, err := Add(a, Neg(b))
	if !res.width.fixed {
		res.bits = shrink(res.bits)
	}
	return res, err
}
