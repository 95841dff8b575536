package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangePairPlus(t *testing.T) {
	r, err := ParseRange("99+")
	require.NoError(t, err)
	assert.Equal(t, MaxPairWeight, r.PairWeight(Nine))
	assert.Equal(t, MaxPairWeight, r.PairWeight(Ace))
	assert.Equal(t, uint16(0), r.PairWeight(Eight))
}

func TestParseRangeSuitedAndOffsuit(t *testing.T) {
	r, err := ParseRange("AKs,AKo")
	require.NoError(t, err)
	assert.Equal(t, MaxSuitedWeight, r.SuitedWeight(Ace, King))
	assert.Equal(t, MaxOffsuitWeight, r.OffsuitWeight(Ace, King))
}

func TestParseRangeSuitedPlusWalksLowerRank(t *testing.T) {
	r, err := ParseRange("A2s+")
	require.NoError(t, err)
	for lo := Two; lo < Ace; lo++ {
		assert.Equal(t, MaxSuitedWeight, r.SuitedWeight(Ace, lo), "A%ss", lo)
	}
}

func TestParseRangeTrailingComma(t *testing.T) {
	r, err := ParseRange("QQ+,AKs,")
	require.NoError(t, err)
	assert.Equal(t, MaxPairWeight, r.PairWeight(Queen))
	assert.Equal(t, MaxPairWeight, r.PairWeight(Ace))
	assert.Equal(t, MaxSuitedWeight, r.SuitedWeight(Ace, King))
}

func TestRangeSizeProportionalToCombos(t *testing.T) {
	r, err := ParseRange("AA")
	require.NoError(t, err)
	assert.Equal(t, int(MaxPairWeight), r.Size())
}

func TestIndex169Bijection(t *testing.T) {
	seen := make(map[int]bool)
	ac, _ := NewCard(Ace, Clubs)
	ad, _ := NewCard(Ace, Diamonds)
	kc, _ := NewCard(King, Clubs)
	ks, _ := NewCard(King, Spades)

	pair, _ := NewHand(ac, ad)
	suited, _ := NewHand(ac, kc)
	offsuit, _ := NewHand(ac, ks)

	for _, h := range []Hand{pair, suited, offsuit} {
		id := Index169(h)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
		assert.True(t, id >= 0 && id < 169)
	}

	assert.Equal(t, "AA", Label169(Index169(pair)))
	assert.Equal(t, "AKs", Label169(Index169(suited)))
	assert.Equal(t, "AKo", Label169(Index169(offsuit)))
}
