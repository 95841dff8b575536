package tree

import "github.com/lox/holdemcfr/game"

// Node is one position in the built game tree. Infoset nodes carry
// children (one per abstracted action, same index as Actions) and no
// payout; terminal nodes carry a payout and no children. Ownership is a
// plain tree: each child belongs to exactly one parent.
type Node struct {
	ID     int // dense id from the game abstraction encoder
	Seat   int // active seat; meaningless at a terminal node
	Street game.Street
	Level  int // tree depth, for diagnostics

	Terminal bool

	// Infoset fields, set when !Terminal.
	Actions  []game.Action
	Children []*Node

	// Terminal fields, set when Terminal.
	Showdown bool
	// Payouts holds the payout for a no-showdown terminal (it doesn't
	// depend on which cards were dealt). It is nil for a showdown
	// terminal, whose payout can only be resolved once a deal is known
	// via PayoutsShowdown, looked up through the game abstraction by ID.
	Payouts []int
}

// IsTerminal reports whether n has no further actions.
func (n *Node) IsTerminal() bool { return n.Terminal }
