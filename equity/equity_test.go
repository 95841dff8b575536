package equity_test

import (
	"context"
	"testing"

	"github.com/lox/holdemcfr/card"
	"github.com/lox/holdemcfr/equity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t *testing.T, s string) card.Hand {
	t.Helper()
	h, err := card.ParseHand(s)
	require.NoError(t, err)
	return h
}

// AA vs T9s preflop, the canonical exhaustive-equity worked example:
// C(48,5) = 1,712,304 distinct boards, roughly 80.8%/19.2% equity.
func TestEnumerateAceAceVersusTenNineSuitedPreflop(t *testing.T) {
	aa := mustHand(t, "AsAh")
	t9 := mustHand(t, "Td9d")

	results, err := equity.Enumerate(context.Background(), []card.Hand{aa, t9}, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	const wantBoards = 1712304
	assert.Equal(t, uint64(wantBoards), results[0].Total)
	assert.Equal(t, uint64(wantBoards), results[1].Total)

	assert.InDelta(t, 0.808, results[0].Equity(), 0.01)
	assert.InDelta(t, 0.192, results[1].Equity(), 0.01)
	assert.InDelta(t, 1.0, results[0].Equity()+results[1].Equity(), 1e-9)
}

func TestEnumerateWithCompleteBoardNeedsNoEnumeration(t *testing.T) {
	aa := mustHand(t, "AsAh")
	kk := mustHand(t, "KsKh")
	board, err := card.ParseCardSet("2c7d9hJcQs")
	require.NoError(t, err)

	results, err := equity.Enumerate(context.Background(), []card.Hand{aa, kk}, board)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, uint64(1), results[0].Total)
	assert.Equal(t, uint64(1), results[1].Total)
	assert.Equal(t, 1.0, results[0].Equity(), "pocket aces beats pocket kings on a blank board")
	assert.Equal(t, 0.0, results[1].Equity())
}

func TestEnumerateSplitsTiedBoardsEvenly(t *testing.T) {
	// Identical-rank hands of different suits on a board that makes a
	// better hand from the board alone: both hands play the board,
	// splitting every completion.
	h1 := mustHand(t, "2c3d")
	h2 := mustHand(t, "2h3s")
	board, err := card.ParseCardSet("AsKsQsJsTs")
	require.NoError(t, err)

	results, err := equity.Enumerate(context.Background(), []card.Hand{h1, h2}, board)
	require.NoError(t, err)
	assert.Equal(t, 0.5, results[0].Equity())
	assert.Equal(t, 0.5, results[1].Equity())
	assert.Equal(t, uint64(1), results[0].Ties)
	assert.Equal(t, uint64(1), results[1].Ties)
}

func TestEnumerateRejectsOverlappingHandsAndBoard(t *testing.T) {
	aa := mustHand(t, "AsAh")
	other := mustHand(t, "AsKs")
	_, err := equity.Enumerate(context.Background(), []card.Hand{aa, other}, 0)
	assert.Error(t, err)
}

func TestEnumerateRejectsFewerThanTwoHands(t *testing.T) {
	aa := mustHand(t, "AsAh")
	_, err := equity.Enumerate(context.Background(), []card.Hand{aa}, 0)
	assert.Error(t, err)
}

func TestEnumerateSupportsThreeWayPreflop(t *testing.T) {
	aa := mustHand(t, "AsAh")
	kk := mustHand(t, "KsKh")
	qq := mustHand(t, "QsQh")

	results, err := equity.Enumerate(context.Background(), []card.Hand{aa, kk, qq}, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)

	total := results[0].Equity() + results[1].Equity() + results[2].Equity()
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Greater(t, results[0].Equity(), results[1].Equity())
	assert.Greater(t, results[1].Equity(), results[2].Equity())
}
