package eval

import (
	"math/bits"

	"github.com/lox/holdemcfr/card"
)

// wheelMask marks the five ranks of the ace-low straight (5-4-3-2-A).
const wheelMask = 0x100F

// straightTop returns the high card of the best straight present in mask
// (false if none). mask uses rank bits 0-12 (Two..Ace); the wheel straight
// reports Five as its high card.
func straightTop(mask uint16) (card.Rank, bool) {
	mask &= maskRanks

	// Bitwise cascade: bit i of seq is set iff ranks i..i+4 are all present.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := bits.Len16(seq) - 1
		return card.Rank(low + 4), true
	}

	if mask&wheelMask == wheelMask {
		return card.Five, true
	}
	return 0, false
}

// topNMask returns a mask containing only the n highest set bits of mask.
func topNMask(mask uint16, n int) uint16 {
	var out uint16
	for count := 0; count < n && mask != 0; count++ {
		top := uint16(1) << (bits.Len16(mask) - 1)
		out |= top
		mask &^= top
	}
	return out
}
