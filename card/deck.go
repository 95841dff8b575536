package card

import "math/rand"

// Deck is a sequence of undealt cards, dealt from a Fisher-Yates shuffle
// driven by an explicit RNG so callers control determinism.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck returns a freshly shuffled standard 52-card deck using rng.
func NewDeck(rng *rand.Rand) *Deck {
	return ExcludeDeck(rng, 0)
}

// ExcludeDeck returns a freshly shuffled deck with every card in dead
// removed, so a sampler can deal a deal consistent with cards already
// fixed (e.g. hole cards already assigned to other seats, or a partial
// board).
func ExcludeDeck(rng *rand.Rand, dead CardSet) *Deck {
	d := &Deck{rng: rng}
	for s := Suit(0); s < NumSuits; s++ {
		for r := Rank(0); r < NumRanks; r++ {
			c, _ := NewCard(r, s)
			if dead.Contains(c) {
				continue
			}
			d.cards = append(d.cards, c)
		}
	}
	d.Shuffle()
	return d
}

// Shuffle resets the deal cursor and reshuffles in place.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal returns the next n cards, advancing the cursor. It returns nil if
// fewer than n cards remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	out := append([]Card(nil), d.cards[d.next:d.next+n]...)
	d.next += n
	return out
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
