package solver

import "github.com/lox/holdemcfr/tree"

// Tables holds the two dense three-level regret/strategy accumulators a
// CFR run mutates, indexed [gameID][cardBucket][action]. Since a single
// traversal walks the tree with a fixed deal, this layout touches one
// cardBucket slot contiguously across actions for every visited infoset,
// which is cache-friendly; the teacher's own cfr_data carries the
// identical three-level shape, just keyed directly by node pointer
// instead of id, and the pack's map-based sdk/solver/regret.go trades
// that locality away for flexibility this core doesn't need.
//
// Entries are allocated for every node id, terminal included, mirroring
// mkpoker's unconditional cfr_data::init walk; a terminal node simply
// gets zero card buckets, so a stray lookup against one panics on index
// out of range rather than silently returning a bogus strategy.
type Tables struct {
	RegretSum   [][][]int32
	StrategySum [][][]int32
}

// NewTables allocates zeroed accumulators sized from root: every node
// contributes one [cardBucket][action] slab, with cardBucket counted by
// ca.Size(node.Street) and action count by len(node.Actions) (zero at a
// terminal node).
func NewTables(root *tree.Node, ca tree.CardAbstraction) *Tables {
	t := &Tables{}
	t.grow(root, ca)
	return t
}

func (t *Tables) grow(n *tree.Node, ca tree.CardAbstraction) {
	numActions := len(n.Actions)
	numBuckets := 0
	if !n.Terminal {
		numBuckets = ca.Size(n.Street)
	}

	regretSlab := make([][]int32, numBuckets)
	strategySlab := make([][]int32, numBuckets)
	for b := 0; b < numBuckets; b++ {
		regretSlab[b] = make([]int32, numActions)
		strategySlab[b] = make([]int32, numActions)
	}

	if n.ID >= len(t.RegretSum) {
		grownR := make([][][]int32, n.ID+1)
		copy(grownR, t.RegretSum)
		t.RegretSum = grownR
		grownS := make([][][]int32, n.ID+1)
		copy(grownS, t.StrategySum)
		t.StrategySum = grownS
	}
	t.RegretSum[n.ID] = regretSlab
	t.StrategySum[n.ID] = strategySlab

	for _, c := range n.Children {
		t.grow(c, ca)
	}
}

// CurrentStrategy computes the regret-matching distribution at
// [gameID][bucket]: r+ = max(r,0), normalized; uniform when all regrets
// are non-positive.
func (t *Tables) CurrentStrategy(gameID, bucket int) []float64 {
	regrets := t.RegretSum[gameID][bucket]
	strat := make([]float64, len(regrets))

	total := 0.0
	for i, r := range regrets {
		if r > 0 {
			strat[i] = float64(r)
			total += float64(r)
		}
	}
	if total <= 0 {
		uniform(strat)
		return strat
	}
	for i := range strat {
		strat[i] /= total
	}
	return strat
}

// AverageStrategy normalizes the accumulated strategySum at
// [gameID][bucket]; uniform when nothing was ever accumulated.
func (t *Tables) AverageStrategy(gameID, bucket int) []float64 {
	sums := t.StrategySum[gameID][bucket]
	strat := make([]float64, len(sums))

	total := int64(0)
	for _, s := range sums {
		total += int64(s)
	}
	if total <= 0 {
		uniform(strat)
		return strat
	}
	for i, s := range sums {
		strat[i] = float64(s) / float64(total)
	}
	return strat
}

func uniform(strat []float64) {
	if len(strat) == 0 {
		return
	}
	v := 1.0 / float64(len(strat))
	for i := range strat {
		strat[i] = v
	}
}
