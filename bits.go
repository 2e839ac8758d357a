package hashtab

import (
	"math/bits"
)

const wordBits = 64

// bitset marks occupied slots of a probing table, one bit per slot.
//
// Slots keep their zero value when empty, so occupancy can't be derived from
// the slot itself: "" is a perfectly valid key.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+wordBits-1)/wordBits)
}

func (b bitset) has(i int) bool {
	return b[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

func (b bitset) set(i int) {
	b[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// count returns the number of set bits.
func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}

	return n
}

// next returns the first set index at or after i, or -1.
func (b bitset) next(i int) int {
	for w := i / wordBits; w < len(b); w++ {
		word := b[w]
		if w == i/wordBits {
			word &= ^uint64(0) << (uint(i) % wordBits)
		}

		if word != 0 {
			return w*wordBits + bits.TrailingZeros64(word)
		}
	}

	return -1
}
