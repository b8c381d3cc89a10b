package shell

import "github.com/skafara/cmparith"

// bankCapacity is the number of results the shell remembers at once
// (spec.md §6: "$1" through "$5", most recent first).
const bankCapacity = 5

// Bank is a bounded history of the REPL's most recent results, addressed by
// a 1-based index where $1 is always the most recently pushed value.
type Bank struct {
	entries []cmparith.Integer // front (index 0) is most recent
}

// Push records v as the new most recent result, evicting the oldest entry
// once the bank is at capacity.
func (b *Bank) Push(v cmparith.Integer) {
	b.entries = append([]cmparith.Integer{v}, b.entries...)
	if len(b.entries) > bankCapacity {
		b.entries = b.entries[:bankCapacity]
	}
}

// Get returns the value at 1-based index i ($1 is most recent). It fails
// with OutOfBankRangeError if i is outside 1..Len().
func (b *Bank) Get(i int) (cmparith.Integer, error) {
	if i < 1 || i > len(b.entries) {
		return cmparith.Integer{}, &OutOfBankRangeError{Index: i, Len: len(b.entries)}
	}
	return b.entries[i-1], nil
}

// Len returns the number of entries currently held, at most bankCapacity.
func (b *Bank) Len() int { return len(b.entries) }
