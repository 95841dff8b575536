package eval

import (
	"math/bits"

	"github.com/lox/holdemcfr/card"
)

// Evaluate finds the best five-card hand out of a 5-, 6-, or 7-card set
// and packs it into a Result, panicking outside that range. It's the safe
// entry point; inner loops that already guarantee a legal size (CFR
// traversal, equity enumeration) can call EvaluateUnsafe directly to skip
// the check.
func Evaluate(cs card.CardSet) Result {
	if size := cs.Size(); size < 5 || size > 7 {
		panic("eval: Evaluate requires a cardset of size 5, 6, or 7")
	}
	return EvaluateUnsafe(cs)
}

// EvaluateUnsafe finds the best five-card hand out of any cardset of size
// up to 7 and packs it into a Result. Branch-free in the sense that every
// category is checked via bitmask arithmetic rather than constructing and
// sorting candidate five-card hands. The caller must guarantee a legal
// size; it does not check.
func EvaluateUnsafe(cs card.CardSet) Result {
	var bestFlush Result
	hasFlush := false
	for s := card.Suit(0); s < card.NumSuits; s++ {
		suitMask := cs.SuitMask(s)
		if bits.OnesCount16(suitMask) < 5 {
			continue
		}
		hasFlush = true
		if top, ok := straightTop(suitMask); ok {
			return pack(StraightFlush, top, 0, 0)
		}
		candidate := pack(Flush, 0, 0, topNMask(suitMask, 5))
		if candidate > bestFlush {
			bestFlush = candidate
		}
	}

	counts, rankMask := countRanks(cs)

	// Seven cards can never hold both a 5+ card flush and four of a kind or
	// a full house at the same time, so it's safe to resolve those two
	// categories before falling back to the flush found above.
	if quad, ok := highestWithCount(counts, 4); ok {
		kicker := topNMask(rankMask&^(1<<quad), 1)
		return pack(FourOfAKind, quad, 0, kicker)
	}

	if trips, ok := highestWithCount(counts, 3); ok {
		if pair, ok := highestWithCountAtLeast(counts, 2, trips); ok {
			return pack(FullHouse, trips, pair, 0)
		}
	}

	if hasFlush {
		return bestFlush
	}

	if top, ok := straightTop(rankMask); ok {
		return pack(Straight, top, 0, 0)
	}

	if trips, ok := highestWithCount(counts, 3); ok {
		kickers := topNMask(rankMask&^(1<<trips), 2)
		return pack(ThreeOfAKind, trips, 0, kickers)
	}

	if pair1, ok := highestWithCount(counts, 2); ok {
		if pair2, ok := highestWithCountExcept(counts, 2, pair1); ok {
			kicker := topNMask(rankMask&^(1<<pair1)&^(1<<pair2), 1)
			return pack(TwoPair, pair1, pair2, kicker)
		}
		kickers := topNMask(rankMask&^(1<<pair1), 3)
		return pack(OnePair, pair1, 0, kickers)
	}

	return pack(NoPair, 0, 0, topNMask(rankMask, 5))
}

func countRanks(cs card.CardSet) (counts [card.NumRanks]uint8, mask uint16) {
	for _, c := range cs.Cards() {
		r := c.Rank()
		counts[r]++
		mask |= 1 << uint(r)
	}
	return counts, mask
}

func highestWithCount(counts [card.NumRanks]uint8, n uint8) (card.Rank, bool) {
	for ri := int(card.Ace); ri >= int(card.Two); ri-- {
		if counts[ri] == n {
			return card.Rank(ri), true
		}
	}
	return 0, false
}

func highestWithCountExcept(counts [card.NumRanks]uint8, n uint8, except card.Rank) (card.Rank, bool) {
	for ri := int(card.Ace); ri >= int(card.Two); ri-- {
		if card.Rank(ri) == except {
			continue
		}
		if counts[ri] == n {
			return card.Rank(ri), true
		}
	}
	return 0, false
}

func highestWithCountAtLeast(counts [card.NumRanks]uint8, n uint8, except card.Rank) (card.Rank, bool) {
	for ri := int(card.Ace); ri >= int(card.Two); ri-- {
		if card.Rank(ri) == except {
			continue
		}
		if counts[ri] >= n {
			return card.Rank(ri), true
		}
	}
	return 0, false
}
