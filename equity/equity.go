// Package equity computes exact hand-vs-hand equity by exhaustively
// enumerating every distinct board completion, rather than sampling.
package equity

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemcfr/card"
	"github.com/lox/holdemcfr/eval"
)

// Result tallies one hand's outcome across every board completion
// enumerated. Wins/Ties/Total mirror the teacher's EquityResult shape
// (sdk/analysis/equity.go), but Total here is the exact count of
// distinct boards enumerated, not a simulation count.
//
// Score and TotalScore implement calculate_equities's scoring exactly
// (holdem_equity_calculation.hpp): a decisive board awards n (the number
// of hands) to the sole winner and 0 to everyone else; a k-way tied
// board awards 1 to each of the k tied hands. TotalScore is the sum of
// every hand's Score and is identical across every Result Enumerate
// returns, so Equity() is well-defined per hand without reference to the
// others, and the equities across hands always sum to exactly 1 — unlike
// a fixed 0.5-per-tie split, this stays correct for 3-way-and-up ties.
type Result struct {
	Wins       uint64
	Ties       uint64
	Total      uint64
	Score      uint64
	TotalScore uint64
}

// Equity returns the hand's share of total equity: Score/TotalScore.
func (r Result) Equity() float64 {
	if r.TotalScore == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalScore)
}

// ConfidenceInterval mirrors the teacher's binomial-proportion interval
// (sdk/analysis/equity.go), kept for API parity with code that still
// expects it. Since Total here is an exact board count rather than a
// sample size, the interval it reports is vanishingly narrow — the
// exhaustive count carries no sampling error, so this collapses close to
// a point estimate rather than communicating real uncertainty.
func (r Result) ConfidenceInterval() (lower, upper float64) {
	n := float64(r.Total)
	if n == 0 {
		return 0, 0
	}
	e := r.Equity()
	se := math.Sqrt(e * (1 - e) / n)
	margin := 1.96 * se
	return math.Max(0, e-margin), math.Min(1, e+margin)
}

// Enumerate computes exact equity for every hand in hands against a
// (possibly partial) board, by exhaustively walking every distinct
// completion of the board to five cards. It returns one Result per hand,
// in the same order as hands.
//
// board may already hold 0 to 5 cards; any already-dealt cards are held
// fixed and only the missing ones are enumerated. Work is parallelized
// across the first card of the completion (grounded on
// internal/evaluator/equity.go's EstimateEquityParallel, which shards
// Monte Carlo samples across goroutines — here the shards are disjoint
// slices of the exhaustive combination space rather than random draws).
func Enumerate(ctx context.Context, hands []card.Hand, board card.CardSet) ([]Result, error) {
	if len(hands) < 2 {
		return nil, fmt.Errorf("equity: Enumerate needs at least 2 hands, got %d", len(hands))
	}
	boardSize := board.Size()
	if boardSize > 5 {
		return nil, fmt.Errorf("equity: board has %d cards, want at most 5", boardSize)
	}
	needed := 5 - boardSize

	used := board
	for _, h := range hands {
		if used.Intersects(h.CardSet()) {
			return nil, fmt.Errorf("equity: hands/board share a card")
		}
		used = used.Combine(h.CardSet())
	}
	remaining := card.FullDeck.RemoveSet(used).Cards()

	if needed == 0 {
		return finalizeScores(evaluateBoard(hands, board)), nil
	}
	if needed > len(remaining) {
		return nil, fmt.Errorf("equity: not enough cards left to complete the board")
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > len(remaining) {
		workers = len(remaining)
	}

	partials := make([][]Result, len(remaining))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range remaining {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			partials[i] = enumerateFrom(hands, board, remaining, i, needed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]Result, len(hands))
	for _, part := range partials {
		for i, r := range part {
			merged[i].Wins += r.Wins
			merged[i].Ties += r.Ties
			merged[i].Total += r.Total
			merged[i].Score += r.Score
		}
	}
	return finalizeScores(merged), nil
}

// finalizeScores sums every hand's Score into a shared TotalScore and
// stamps it onto each Result, so Equity() can divide without needing the
// rest of the slice.
func finalizeScores(out []Result) []Result {
	var total uint64
	for _, r := range out {
		total += r.Score
	}
	for i := range out {
		out[i].TotalScore = total
	}
	return out
}

// enumerateFrom walks every completion whose lexicographically-first
// unused card is remaining[first], accumulating one Result per hand.
func enumerateFrom(hands []card.Hand, board card.CardSet, remaining []card.Card, first, needed int) []Result {
	out := make([]Result, len(hands))
	chosen := make([]card.Card, 0, needed)
	chosen = append(chosen, remaining[first])

	var recurse func(start int)
	recurse = func(start int) {
		if len(chosen) == needed {
			full := board
			for _, c := range chosen {
				full = full.Insert(c)
			}
			tally(hands, full, out)
			return
		}
		for i := start; i < len(remaining); i++ {
			chosen = append(chosen, remaining[i])
			recurse(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	recurse(first + 1)
	return out
}

// tally evaluates every hand against the completed board and folds the
// outcome into out. A decisive board awards n = len(hands) worth of Score
// to the sole winner; a k-way tied board awards 1 to each of the k tied
// hands, matching calculate_equities's scoring exactly.
func tally(hands []card.Hand, full card.CardSet, out []Result) {
	best := eval.Result(0)
	scores := make([]eval.Result, len(hands))
	for i, h := range hands {
		s := eval.EvaluateUnsafe(full.Combine(h.CardSet()))
		scores[i] = s
		if s > best {
			best = s
		}
	}
	winners := 0
	for _, s := range scores {
		if s == best {
			winners++
		}
	}
	n := uint64(len(hands))
	for i, s := range scores {
		out[i].Total++
		if s != best {
			continue
		}
		if winners == 1 {
			out[i].Wins++
			out[i].Score += n
		} else {
			out[i].Ties++
			out[i].Score++
		}
	}
}

// evaluateBoard handles the already-complete-board case directly,
// without spinning up any enumeration.
func evaluateBoard(hands []card.Hand, board card.CardSet) []Result {
	out := make([]Result, len(hands))
	tally(hands, board, out)
	return out
}
