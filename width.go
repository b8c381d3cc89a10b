package cmparith

import "fmt"

// MinWidth is the smallest permitted fixed width, in words, and also the
// smallest actual width an Unlimited value ever shrinks to.
const MinWidth = 4

// Width is the width mode of an Integer: either a fixed word count or the
// Unlimited sentinel. The zero Width is Unlimited.
type Width struct {
	n     int
	fixed bool
}

// Unlimited is the width mode whose actual width grows and shrinks with the
// value it holds.
var Unlimited = Width{}

// FixedWidth returns the fixed-width mode of n words. It panics if n is
// smaller than MinWidth.
func FixedWidth(n int) Width {
	if n < MinWidth {
		panic(fmt.Sprintf("cmparith: fixed width must be >= %d, got %d", MinWidth, n))
	}
	return Width{n: n, fixed: true}
}

// IsUnlimited reports whether w is the Unlimited width mode.
func (w Width) IsUnlimited() bool { return !w.fixed }

// Words returns the fixed word count of w. It panics if w is Unlimited.
func (w Width) Words() int {
	if !w.fixed {
		panic("cmparith: Words called on Unlimited width")
	}
	return w.n
}

func (w Width) String() string {
	if !w.fixed {
		return "unlimited"
	}
	return fmt.Sprintf("fixed(%d)", w.n)
}

// combine returns the result width mode of a binary operation on operands
// of width a and b: the wider of the two, with Unlimited dominating any
// fixed value (spec.md §4.2).
func combine(a, b Width) Width {
	if !a.fixed || !b.fixed {
		return Unlimited
	}
	if a.n >= b.n {
		return a
	}
	return b
}
