package card

import (
	"fmt"
	"strings"
)

// Suit is a card suit in [0,3], Clubs=0, Diamonds=1, Hearts=2, Spades=3.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of distinct suits.
const NumSuits = 4

const suitChars = "cdhs"

// ParseSuit parses a single suit character (case-insensitive).
func ParseSuit(c byte) (Suit, error) {
	idx := strings.IndexByte(suitChars, lowerByte(c))
	if idx < 0 {
		return 0, fmt.Errorf("card: invalid suit character %q", c)
	}
	return Suit(idx), nil
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// String returns the single-character suit representation, e.g. "s", "h".
func (s Suit) String() string {
	if s > Spades {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return string(suitChars[s])
}

// Valid reports whether s is in range.
func (s Suit) Valid() bool { return s <= Spades }
