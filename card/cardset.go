package card

import (
	"math/bits"
	"strings"
)

// CardSet is a 52-bit set of cards. Bits 52..63 are always zero.
type CardSet uint64

// FullDeck is the set of all 52 cards.
const FullDeck CardSet = (1 << DeckSize) - 1

// NewCardSet builds a CardSet from individual cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs = cs.Insert(c)
	}
	return cs
}

// ParseCardSet parses a concatenated string of 2-character card tokens,
// e.g. "AcKs2h".
func ParseCardSet(s string) (CardSet, error) {
	if len(s)%2 != 0 {
		return 0, errInvalidCardString(s)
	}
	var cs CardSet
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return 0, err
		}
		cs = cs.Insert(c)
	}
	return cs, nil
}

func errInvalidCardString(s string) error {
	return &cardSetParseError{s}
}

type cardSetParseError struct{ s string }

func (e *cardSetParseError) Error() string {
	return "card: invalid card set string " + e.s
}

// Size returns the number of cards in the set.
func (cs CardSet) Size() int { return bits.OnesCount64(uint64(cs)) }

// Contains reports whether c is a member of cs.
func (cs CardSet) Contains(c Card) bool { return cs&CardSet(c.Bit()) != 0 }

// ContainsSet reports whether other is a subset of cs.
func (cs CardSet) ContainsSet(other CardSet) bool { return cs&other == other }

// Disjoint reports whether cs and other share no cards.
func (cs CardSet) Disjoint(other CardSet) bool { return cs&other == 0 }

// Intersects reports whether cs and other share at least one card.
func (cs CardSet) Intersects(other CardSet) bool { return cs&other != 0 }

// Insert returns a new set with c added.
func (cs CardSet) Insert(c Card) CardSet { return cs | CardSet(c.Bit()) }

// Remove returns a new set with c removed.
func (cs CardSet) Remove(c Card) CardSet { return cs &^ CardSet(c.Bit()) }

// Combine returns the union of cs and other.
func (cs CardSet) Combine(other CardSet) CardSet { return cs | other }

// RemoveSet returns cs with every card in other removed.
func (cs CardSet) RemoveSet(other CardSet) CardSet { return cs &^ other }

// SuitMask returns the 13-bit rank mask of the cards in cs with suit s,
// bit i set meaning rank i is present.
func (cs CardSet) SuitMask(s Suit) uint16 {
	return uint16((uint64(cs) >> (uint(s) * NumRanks)) & 0x1FFF)
}

// Cards returns the set's members in ascending canonical order.
func (cs CardSet) Cards() []Card {
	out := make([]Card, 0, cs.Size())
	for m := uint64(cs); m != 0; m &= m - 1 {
		out = append(out, Card(bits.TrailingZeros64(m)))
	}
	return out
}

// String returns the concatenation of the set's cards in ascending order.
func (cs CardSet) String() string {
	var b strings.Builder
	for _, c := range cs.Cards() {
		b.WriteString(c.String())
	}
	return b.String()
}
