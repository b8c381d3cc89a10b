package cmparith

// Mul returns a*b, promoted to the wider of a's and b's widths, per the
// shift-and-add algorithm of spec.md §4.5. Both operands are reduced to
// positive magnitudes first, and the sign is recomposed at the end.
//
// In unlimited mode the working buffer is pre-extended to twice the
// operands' common actual width before the shift-and-add loop, so that the
// left operand's repeated left-shifts never discard significant bits
// (spec.md §4.5 step 3, §9); the result is shrunk back to its minimal
// representation afterward. In fixed mode the working width never grows:
// overflow is reported when the shift-and-add carries out of the top word,
// or when the final positive-magnitude result has its sign bit set.
func Mul(a, b Integer) (Integer, error) {
	signPositive := a.IsNegative() == b.IsNegative()
	ma, mb := absInteger(a), absInteger(b)
	x, y, rw, aw := prepareBinary(ma, mb)

	workAW := aw
	if !rw.fixed {
		workAW = 2 * aw
		x = Normalize(x, rw, workAW)
		y = Normalize(y, rw, workAW)
	}

	left := make([]byte, workAW)
	copy(left, x.bits)
	right := make([]byte, workAW)
	copy(right, y.bits)
	result := make([]byte, workAW)

	carryEver := false
	end := msbIndex(right)
	for i := 0; i <= end; i++ {
		if right[0]&1 != 0 {
			sum, carry, _ := addRaw(result, left)
			result = sum
			if carry {
				carryEver = true
			}
		}
		left = shiftLeftRaw(left, 1)
		right = shiftRightRaw(right, 1)
	}

	var fixedOverflow bool
	if rw.fixed {
		fixedOverflow = carryEver || result[workAW-1]&0x80 != 0
	} else {
		result = shrink(result)
	}

	res := Integer{bits: result, width: rw}
	if !signPositive {
		res = Neg(res)
	}
	if fixedOverflow {
		return res, &OverflowError{Wrapped: res}
	}
	return res, nil
}
