package solver

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemcfr/card"
	"github.com/lox/holdemcfr/game"
	"github.com/lox/holdemcfr/tree"
)

// Trainer orchestrates parallel external-sampling CFR iterations over a
// single, already-built game tree. It holds the dense regret/strategy
// tables every worker mutates concurrently and without synchronization:
// per spec.md §5, increments are small perturbations of a large running
// sum and occasional lost updates under a race are absorbed by future
// iterations, so no mutex guards the hot path (a deliberate departure
// from the teacher's sdk/solver/regret.go, whose map-backed RegretTable
// takes a per-shard RWMutex to protect map growth — a concern a
// pre-sized dense array doesn't have).
type Trainer struct {
	cfg  TrainingConfig
	root *tree.Node
	enc  *tree.Enumerator
	ca   tree.CardAbstraction
	aa   tree.ActionAbstraction
	tabs *Tables
}

// NewTrainer validates cfg, builds the initial game state and the full
// game tree single-threaded, and allocates regret/strategy tables sized
// against it. Tree construction finishing before any worker starts is a
// spec.md §5 requirement, not an optimization: the tables' shapes are
// derived by walking the finished tree.
func NewTrainer(cfg TrainingConfig) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gs, err := game.NewGameState(cfg.Seats, cfg.RakeNum, cfg.RakeDen, cfg.Stacks())
	if err != nil {
		return nil, fmt.Errorf("solver: building initial game state: %w", err)
	}

	aa := actionAbstractionFor(cfg.Abstraction.Action)
	ca := cardAbstractionFor(cfg.Abstraction.Card)

	enc := tree.NewEnumerator()
	root := tree.Build(gs, enc, aa)
	tabs := NewTables(root, ca)

	return &Trainer{cfg: cfg, root: root, enc: enc, ca: ca, aa: aa, tabs: tabs}, nil
}

func actionAbstractionFor(k ActionAbstractionKind) tree.ActionAbstraction {
	if k == ActionSimplePreflop {
		return tree.SimplePreflopAbstraction{}
	}
	return tree.NoopAbstraction{}
}

func cardAbstractionFor(k CardAbstractionKind) tree.CardAbstraction {
	if k == CardSuitNormalized {
		return tree.SuitNormalizedAbstraction{}
	}
	return tree.Range169Abstraction{}
}

// Run spawns cfg.Workers goroutines, each performing cfg.Iterations
// private traversals: sample a deal from its own seeded RNG, traverse
// the shared tree once with every seat's reach probability starting at
// 1, and let the unsynchronized table updates land. It returns once
// every worker's budget is exhausted, ctx is cancelled, or a worker
// panics during traversal (a protocol violation bug, not a recoverable
// runtime condition — see game.GameState's error-handling taxonomy).
func (tr *Trainer) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < tr.cfg.Workers; w++ {
		seed := tr.cfg.Seed*int64(tr.cfg.Workers) + int64(w)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			reach := make([]float32, tr.cfg.Seats)
			for i := 0; i < tr.cfg.Iterations; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				deal := tr.sampleDeal(rng)
				for s := range reach {
					reach[s] = 1
				}
				Traverse(tr.root, deal, reach, tr.tabs, tr.ca, tr.enc)
			}
			return nil
		})
	}
	return g.Wait()
}

// sampleDeal deals every seat two hole cards and a full five-card board
// from one freshly shuffled deck. The board is always dealt out to the
// river regardless of which street the traversal actually reaches,
// since a card abstraction only ever looks at the prefix it needs.
func (tr *Trainer) sampleDeal(rng *rand.Rand) tree.Deal {
	deck := card.NewDeck(rng)
	holes := make([]card.Hand, tr.cfg.Seats)
	for i := range holes {
		cs := deck.Deal(2)
		h, err := card.NewHand(cs[0], cs[1])
		if err != nil {
			panic("solver: sampleDeal: " + err.Error())
		}
		holes[i] = h
	}
	board := card.NewCardSet(deck.Deal(5)...)
	return tree.Deal{Board: board, Holes: holes}
}

// Tables exposes the accumulated regret/strategy tables, for diagnostics
// and for building an average strategy once training is done.
func (tr *Trainer) Tables() *Tables { return tr.tabs }

// Root exposes the built tree, for diagnostics.
func (tr *Trainer) Root() *tree.Node { return tr.root }
