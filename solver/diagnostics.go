package solver

import (
	"math"

	"github.com/lox/holdemcfr/tree"
)

// TreeSize counts infoset and terminal nodes reachable from a node,
// ported from mkpoker's tree_size (cfr/cfr.hpp).
type TreeSize struct {
	Infosets  int
	Terminals int
}

// ComputeTreeSize walks n and its descendants.
func ComputeTreeSize(n *tree.Node) TreeSize {
	var size TreeSize
	for _, c := range n.Children {
		child := ComputeTreeSize(c)
		size.Infosets += child.Infosets
		size.Terminals += child.Terminals
	}
	if n.Terminal {
		size.Terminals++
	} else {
		size.Infosets++
	}
	return size
}

// RegretStats summarizes every regret entry reachable from a node: the
// total sum and the single smallest/largest entry, ported from
// mkpoker's regret_stats (cfr/cfr.hpp). Used by tests asserting the i32
// overflow-guard property (spec.md §8): Min/Max staying well inside
// int32 range across a training run's iteration budget.
type RegretStats struct {
	Sum int64
	Min int32
	Max int32
}

// ComputeRegretStats walks n and its descendants, reducing over every
// [cardBucket][action] regret slot tabs holds for each infoset.
func ComputeRegretStats(n *tree.Node, tabs *Tables) RegretStats {
	stats := RegretStats{Min: math.MaxInt32, Max: math.MinInt32}
	for _, c := range n.Children {
		child := ComputeRegretStats(c, tabs)
		stats.Sum += child.Sum
		if child.Min < stats.Min {
			stats.Min = child.Min
		}
		if child.Max > stats.Max {
			stats.Max = child.Max
		}
	}
	if n.Terminal {
		return stats
	}
	for _, bucketRegrets := range tabs.RegretSum[n.ID] {
		for _, r := range bucketRegrets {
			stats.Sum += int64(r)
			if r < stats.Min {
				stats.Min = r
			}
			if r > stats.Max {
				stats.Max = r
			}
		}
	}
	return stats
}

// SnapshotKey identifies one infoset's card bucket within a Snapshot.
type SnapshotKey struct {
	GameID int
	Bucket int
}

// Snapshot is an in-memory, process-local capture of every infoset's
// average strategy reachable from the trained tree. It exists purely
// for tests and diagnostics to assert convergence properties (spec.md
// §8's ε-Nash property) — no wire format is mandated by the core, so
// this is never persisted to disk, unlike the teacher's
// sdk/solver/blueprint.go Blueprint (which this deliberately omits the
// Save/Load half of).
type Snapshot struct {
	Strategies map[SnapshotKey][]float64
}

// Snapshot walks every infoset reachable from the trained tree and
// records its average strategy for every card bucket the configured
// card abstraction defines on that street.
func (tr *Trainer) Snapshot() Snapshot {
	snap := Snapshot{Strategies: make(map[SnapshotKey][]float64)}
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if n.Terminal {
			return
		}
		size := tr.ca.Size(n.Street)
		for b := 0; b < size; b++ {
			snap.Strategies[SnapshotKey{n.ID, b}] = tr.tabs.AverageStrategy(n.ID, b)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tr.root)
	return snap
}
