package cmparith

// Zero returns the value 0 at width w.
func Zero(w Width) Integer {
	return smallInt(0, w)
}

// One returns the value 1 at width w.
func One(w Width) Integer {
	return smallInt(1, w)
}

// smallInt returns the non-negative value v (v < 128) at width w. It is
// used internally to build the small constants (0, 1, 2, 10) that
// decimal conversion, Factorial and division need at an arbitrary width,
// matching spec.md §5's note that such constants "are pure values and may
// be reconstructed on demand" rather than kept as shared global state.
func smallInt(v byte, w Width) Integer {
	aw := MinWidth
	if w.fixed {
		aw = w.n
	}
	bits := make([]byte, aw)
	bits[0] = v
	return Integer{bits: bits, width: w}
}

// Equal reports whether x and y denote the same mathematical value,
// irrespective of width mode or actual width (spec.md §3 invariant 3).
func (x Integer) Equal(y Integer) bool {
	aw := len(x.bits)
	if len(y.bits) > aw {
		aw = len(y.bits)
	}
	xb := signExtend(x.bits, aw)
	yb := signExtend(y.bits, aw)
	for i := range xb {
		if xb[i] != yb[i] {
			return false
		}
	}
	return true
}

// absInteger returns |x| at x's own width. Negating the most negative
// value representable in a fixed width wraps back to itself (classic
// two's-complement behavior); callers that need an overflow signal for
// that case get it indirectly, since the wrapped magnitude still carries
// a set sign bit and downstream sign-pattern checks (Mul's positive-
// magnitude check, notably) will flag it. In unlimited mode a negative x
// is first sign-extended by one word, so its magnitude never wraps.
func absInteger(x Integer) Integer {
	if x.IsNegative() {
		if !x.width.fixed {
			x = Integer{bits: signExtend(x.bits, len(x.bits)+1), width: x.width}
		}
		return Neg(x)
	}
	return x
}
