package card

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHas52DistinctCards(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	assert.Equal(t, 52, d.Remaining())

	seen := map[Card]bool{}
	dealt := d.Deal(52)
	require.Len(t, dealt, 52)
	for _, c := range dealt {
		assert.False(t, seen[c], "card %s dealt twice", c)
		seen[c] = true
	}
	assert.Equal(t, 0, d.Remaining())
	assert.Nil(t, d.Deal(1))
}

func TestExcludeDeckOmitsDeadCards(t *testing.T) {
	dead, err := ParseCardSet("AsAhAdAc")
	require.NoError(t, err)

	d := ExcludeDeck(rand.New(rand.NewSource(2)), dead)
	assert.Equal(t, 48, d.Remaining())

	for _, c := range d.Deal(48) {
		assert.False(t, dead.Contains(c))
	}
}

func TestDeckShuffleIsDeterministicForFixedSeed(t *testing.T) {
	d1 := NewDeck(rand.New(rand.NewSource(42)))
	d2 := NewDeck(rand.New(rand.NewSource(42)))
	assert.Equal(t, d1.Deal(52), d2.Deal(52))
}
