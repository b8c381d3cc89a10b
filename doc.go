/*
Package cmparith implements multi-precision signed integer arithmetic in
two modes: fixed-width, where a value occupies a number of 8-bit words
chosen when its Width is built, and unlimited, where the underlying buffer grows and shrinks
as needed. Numbers are stored in two's-complement form, little-endian by
word.

The zero value for an Integer is not usable directly; construct one with
Zero, One or New:

    x := cmparith.Zero(cmparith.FixedWidth(4)) // x is 0 at a 4-byte width
    y, err := cmparith.New(cmparith.Unlimited, "123456789012345678901234567890")

Arithmetic is expressed as free functions rather than methods, because the
result of a binary operation is not owned by either operand: its width is
the wider of the two operand widths (see Normalize). For instance, given two
Integers a and b:

    c, err := cmparith.Add(a, b)

computes the sum a + b, promoted to the wider of a's and b's widths. err is
non-nil only in fixed-width mode, when the mathematically exact sum cannot
be represented; the returned Integer is still the best-effort wrapped
result in that case, so callers that want to keep accumulating (as
Factorial and decimal parsing do) are never handed a useless zero value.

Integer values are immutable: every operation returns a new value rather
than mutating an operand in place.
*/
package cmparith
