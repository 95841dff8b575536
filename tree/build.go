package tree

import "github.com/lox/holdemcfr/game"

// Build recursively constructs the game tree rooted at s, encoding every
// visited state through enc. A terminal state precomputes its payout
// immediately when there is no showdown, since that payout never depends
// on which cards were dealt; a showdown terminal defers its payout to
// traversal time, once the solver knows the deal, resolved by decoding
// the node's ID back through enc. An infoset node enumerates
// aa.Filter(s), advances a cloned copy of s by each surviving action,
// and recurses. Each child is owned by exactly one parent.
func Build(s *game.GameState, enc GameAbstraction, aa ActionAbstraction) *Node {
	return build(s, enc, aa, 0)
}

func build(s *game.GameState, enc GameAbstraction, aa ActionAbstraction, level int) *Node {
	id := enc.Encode(s)

	if s.IsTerminal() {
		n := &Node{
			ID:       id,
			Seat:     s.CurrentSeat,
			Street:   s.Street,
			Level:    level,
			Terminal: true,
			Showdown: s.IsShowdown(),
		}
		if !n.Showdown {
			payouts, err := s.PayoutsNoShowdown()
			if err != nil {
				panic("tree: build: " + err.Error())
			}
			n.Payouts = payouts
		}
		return n
	}

	n := &Node{
		ID:     id,
		Seat:   s.CurrentSeat,
		Street: s.Street,
		Level:  level,
	}

	actions := aa.Filter(s)
	n.Actions = actions
	n.Children = make([]*Node, len(actions))
	for i, a := range actions {
		child := s.Clone()
		if err := child.ExecuteAction(a); err != nil {
			panic("tree: build: " + err.Error())
		}
		n.Children[i] = build(&child, enc, aa, level+1)
	}
	return n
}
