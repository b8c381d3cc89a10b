package cmparith

// Integer is a two's-complement signed integer. Its zero value is not a
// usable number; construct one with Zero, One or New.
//
// bits holds the words of the representation, word 0 least significant,
// bit 0 of each word least significant (spec.md §3). Its length is the
// actual width (AW): in fixed mode AW always equals the declared width; in
// unlimited mode AW grows and shrinks with the value, never below
// MinWidth.
type Integer struct {
	bits  []byte
	width Width
}

// Width returns x's width mode.
func (x Integer) Width() Width { return x.width }

// ActualWidth returns the length of x's word slice.
func (x Integer) ActualWidth() int { return len(x.bits) }

// IsNegative reports whether x's sign bit is set.
func (x Integer) IsNegative() bool { return signBit(x.bits) }

// signBit reports the sign of a raw word slice: the top bit of the
// top word.
func signBit(bits []byte) bool {
	return bits[len(bits)-1]&0x80 != 0
}

// signExtend returns a copy of bits widened to targetAW words, filling new
// high words with 0x00 (non-negative) or 0xFF (negative) per spec.md §4.2.
// targetAW must be >= len(bits).
func signExtend(bits []byte, targetAW int) []byte {
	if targetAW < len(bits) {
		panic("cmparith: signExtend to a narrower width")
	}
	out := make([]byte, targetAW)
	copy(out, bits)
	if targetAW > len(bits) {
		fill := byte(0x00)
		if signBit(bits) {
			fill = 0xFF
		}
		for i := len(bits); i < targetAW; i++ {
			out[i] = fill
		}
	}
	return out
}

// shrink trims bits down to the smallest length >= MinWidth that preserves
// its sign: the representation is minimal when the top word is 0x00 with
// the next word's MSB clear (non-negative) or 0xFF with the next word's MSB
// set (negative). This is spec.md §3 invariant 2's general form. For a
// positive magnitude it is never longer than the source's
// max(4, ceil((msb+1)/8)+1) formula (spec.md §9) and is one word shorter
// whenever the formula keeps a whole spare word (e.g. 2^30: 4 words, not 5).
func shrink(bits []byte) []byte {
	n := len(bits)
	for n > MinWidth {
		top := bits[n-1]
		next := bits[n-2]
		if top == 0x00 && next&0x80 == 0 {
			n--
			continue
		}
		if top == 0xFF && next&0x80 != 0 {
			n--
			continue
		}
		break
	}
	return bits[:n:n]
}

// prepareBinary normalizes a and b per spec.md §4.2: both operands are
// sign-extended to the wider actual width and tagged with the combined
// result width mode.
func prepareBinary(a, b Integer) (xa, xb Integer, rw Width, aw int) {
	rw = combine(a.width, b.width)
	aw = len(a.bits)
	if len(b.bits) > aw {
		aw = len(b.bits)
	}
	xa = Integer{bits: signExtend(a.bits, aw), width: rw}
	xb = Integer{bits: signExtend(b.bits, aw), width: rw}
	return
}

// Normalize returns a copy of x whose actual width is exactly
// targetActualWidth, sign-extended per spec.md §4.2. It panics if
// targetActualWidth is smaller than x's actual width, since narrowing is
// never implicit (spec.md §3). Unlike the value this spec was distilled
// from, Normalize always rebuilds its result at the requested width: it
// never special-cases "already wide enough" into returning an
// under-tagged value (spec.md §9, Open Question #3).
func Normalize(x Integer, w Width, targetActualWidth int) Integer {
	return Integer{bits: signExtend(x.bits, targetActualWidth), width: w}
}

// getBit returns bit i (0 = LSB of word 0) of bits.
func getBit(bits []byte, i int) byte {
	return (bits[i/8] >> uint(i%8)) & 1
}

// setBit sets bit i of bits to v (0 or 1).
func setBit(bits []byte, i int, v byte) {
	mask := byte(1) << uint(i%8)
	if v != 0 {
		bits[i/8] |= mask
	} else {
		bits[i/8] &^= mask
	}
}

// msbIndex returns the index of the highest set bit in bits, or -1 if bits
// is all zero.
func msbIndex(bits []byte) int {
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == 0 {
			continue
		}
		for b := 7; b >= 0; b-- {
			if bits[i]&(1<<uint(b)) != 0 {
				return i*8 + b
			}
		}
	}
	return -1
}

func isZero(bits []byte) bool {
	for _, b := range bits {
		if b != 0 {
			return false
		}
	}
	return true
}
