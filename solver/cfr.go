package solver

import (
	"math"

	"github.com/lox/holdemcfr/tree"
)

// Traverse recursively computes the utility vector for node under deal,
// updating the regret and strategy-sum tables as external-sampling CFR
// prescribes. Ported from mkpoker's cfr_2p (cfr/cfr.hpp), generalized
// from its hard-coded two-seat array<int32_t,2> to an N-seat []int32
// (N in [2,6]): the acting seat's regret entry updates proportionally
// to the product of every other seat's reach probability, rather than
// assuming exactly one "other" player.
func Traverse(node *tree.Node, deal tree.Deal, reach []float32, tabs *Tables, ca tree.CardAbstraction, ga tree.GameAbstraction) []int32 {
	if node.IsTerminal() {
		return terminalUtility(node, deal, ga)
	}

	ap := node.Seat
	bucket := ca.ID(node.Street, ap, deal)

	strategy := tabs.CurrentStrategy(node.ID, bucket)
	sums := tabs.StrategySum[node.ID][bucket]
	for i, s := range strategy {
		sums[i] += int32(reach[ap] * 100 * float32(s))
	}

	childUtils := make([][]int32, len(node.Children))
	nodeUtility := make([]float64, len(reach))
	for i, child := range node.Children {
		reachNext := append([]float32(nil), reach...)
		reachNext[ap] *= float32(strategy[i])
		u := Traverse(child, deal, reachNext, tabs, ca, ga)
		childUtils[i] = u
		for s := range nodeUtility {
			nodeUtility[s] += strategy[i] * float64(u[s])
		}
	}

	rounded := make([]int32, len(reach))
	for s, v := range nodeUtility {
		rounded[s] = int32(math.Round(v))
	}

	othersReach := othersReachProduct(reach, ap)
	regrets := tabs.RegretSum[node.ID][bucket]
	for i := range node.Children {
		regretAP := float64(childUtils[i][ap]) - float64(rounded[ap])
		regrets[i] += int32(math.Round(float64(othersReach) * regretAP))
	}

	return rounded
}

// othersReachProduct is the product of every seat's reach except ap's
// own: the weight CFR's regret update applies, generalizing the
// two-player form's reach[1-p].
func othersReachProduct(reach []float32, ap int) float32 {
	p := float32(1)
	for i, r := range reach {
		if i != ap {
			p *= r
		}
	}
	return p
}

func terminalUtility(node *tree.Node, deal tree.Deal, ga tree.GameAbstraction) []int32 {
	if !node.Showdown {
		out := make([]int32, len(node.Payouts))
		for i, p := range node.Payouts {
			out[i] = int32(p)
		}
		return out
	}

	gs := ga.Decode(node.ID)
	payouts, err := gs.PayoutsShowdown(deal.ToGameCards())
	if err != nil {
		panic("solver: Traverse: " + err.Error())
	}
	out := make([]int32, len(payouts))
	for i, p := range payouts {
		out[i] = int32(p)
	}
	return out
}
