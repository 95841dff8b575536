package card

import (
	"math/bits"
	"sort"
)

// NormalizationVector computes the suit permutation that maps cs into
// the canonical representative of its suit-isomorphism class. Ranks are
// invariant; only suit labels move.
//
// The four suits are decomposed into per-suit 13-bit rank masks, then
// ordered by (popcount descending, mask value descending); a suit's
// position in that ordering is its rotation target. This mirrors every
// natural suit-symmetry: two configurations that differ only by a suit
// relabeling produce the same sorted sequence of masks, hence the same
// target permutation.
func NormalizationVector(cs CardSet) [NumSuits]Suit {
	type suitMask struct {
		suit Suit
		mask uint16
	}
	pairs := [NumSuits]suitMask{
		{Clubs, cs.SuitMask(Clubs)},
		{Diamonds, cs.SuitMask(Diamonds)},
		{Hearts, cs.SuitMask(Hearts)},
		{Spades, cs.SuitMask(Spades)},
	}
	sort.SliceStable(pairs[:], func(i, j int) bool {
		pi, pj := bits.OnesCount16(pairs[i].mask), bits.OnesCount16(pairs[j].mask)
		if pi != pj {
			return pi > pj
		}
		return pairs[i].mask > pairs[j].mask
	})

	var vec [NumSuits]Suit
	for pos, p := range pairs {
		vec[p.suit] = Suit(pos)
	}
	return vec
}

// RotateSuits relabels every card's suit in cs according to vec, where
// vec[originalSuit] is the suit that original suit maps to.
func RotateSuits(cs CardSet, vec [NumSuits]Suit) CardSet {
	var out CardSet
	for s := Suit(0); s < NumSuits; s++ {
		mask := uint64(cs.SuitMask(s))
		out |= CardSet(mask << (uint(vec[s]) * NumRanks))
	}
	return out
}

// Normalize returns cs rotated into the canonical representative of its
// suit-isomorphism class.
func Normalize(cs CardSet) CardSet {
	return RotateSuits(cs, NormalizationVector(cs))
}
