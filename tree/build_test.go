package tree

import (
	"testing"

	"github.com/lox/holdemcfr/card"
	"github.com/lox/holdemcfr/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadsUp(t *testing.T) *game.GameState {
	t.Helper()
	g, err := game.NewGameState(2, 1, 20, []int{5000, 5000})
	require.NoError(t, err)
	return g
}

func TestBuildNoopHeadsUpIsTerminalCorrect(t *testing.T) {
	root := newHeadsUp(t)
	enc := NewEnumerator()
	n := Build(root, enc, NoopAbstraction{})

	require.False(t, n.IsTerminal())
	require.NotEmpty(t, n.Children)
	assert.Equal(t, len(n.Actions), len(n.Children))

	// every leaf is a terminal node and every id was assigned exactly
	// once, in tree-build order.
	seen := map[int]bool{}
	var walk func(*Node)
	walk = func(cur *Node) {
		require.False(t, seen[cur.ID], "id %d encoded twice", cur.ID)
		seen[cur.ID] = true
		if cur.IsTerminal() {
			assert.Empty(t, cur.Children)
			if !cur.Showdown {
				assert.NotNil(t, cur.Payouts)
				sum := 0
				for _, p := range cur.Payouts {
					sum += p
				}
				assert.Equal(t, 0, sum, "no-showdown payouts must net to zero pre-rake when flop unreached")
			} else {
				assert.Nil(t, cur.Payouts)
			}
			return
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	assert.Equal(t, enc.Len(), len(seen))
}

func TestBuildSimplePreflopCollapsesPostflopToCheck(t *testing.T) {
	root := newHeadsUp(t)
	enc := NewEnumerator()
	n := Build(root, enc, SimplePreflopAbstraction{})

	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.IsTerminal() {
			return
		}
		if cur.Street != game.Preflop {
			require.Len(t, cur.Actions, 1)
			assert.Equal(t, game.Check, cur.Actions[0].Kind)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
}

func TestEnumeratorEncodeDecodeRoundTrips(t *testing.T) {
	root := newHeadsUp(t)
	enc := NewEnumerator()
	id := enc.Encode(root)

	// mutate the live root after encoding; the stored snapshot must not
	// see the mutation, since Build relies on encode-then-clone-and-act.
	require.NoError(t, root.ExecuteAction(game.Action{Kind: game.Call, Amount: 500, Seat: 0}))

	decoded := enc.Decode(id)
	assert.Equal(t, 500, decoded.ChipsFront[0])
	assert.Equal(t, 1000, root.ChipsFront[0])
}

func TestRange169AbstractionSizeAndID(t *testing.T) {
	var ca Range169Abstraction
	assert.Equal(t, 169, ca.Size(game.Preflop))

	c1, err := card.ParseCard("As")
	require.NoError(t, err)
	c2, err := card.ParseCard("Ks")
	require.NoError(t, err)
	hand, err := card.NewHand(c1, c2)
	require.NoError(t, err)

	deal := Deal{Holes: []card.Hand{hand}}
	id := ca.ID(game.Preflop, 0, deal)
	assert.Equal(t, card.Index169(hand), id)
	assert.Equal(t, "AKs", ca.Label(game.Preflop, id))
}
