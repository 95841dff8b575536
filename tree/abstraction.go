// Package tree builds an explicit game tree over a game.GameState, with
// pluggable action and card abstractions controlling its branching factor
// and the granularity of the regret tables a solver indexes it by.
package tree

import (
	"fmt"

	"github.com/lox/holdemcfr/card"
	"github.com/lox/holdemcfr/game"
)

// ActionAbstraction restricts the actions offered to a game state at tree-
// build time, trading off tree size against strategic fidelity.
type ActionAbstraction interface {
	Filter(s *game.GameState) []game.Action
}

// NoopAbstraction offers every action the game state allows.
type NoopAbstraction struct{}

func (NoopAbstraction) Filter(s *game.GameState) []game.Action { return s.PossibleActions() }

// SimplePreflopAbstraction keeps {FOLD, CHECK, CALL, ALLIN} plus a single
// pot-sized RAISE preflop, tolerating up to 250 mBB of rounding on the
// pot-sized amount to land on an actually-legal raise increment; every
// later street is collapsed to CHECK only.
type SimplePreflopAbstraction struct{}

func (SimplePreflopAbstraction) Filter(s *game.GameState) []game.Action {
	all := s.PossibleActions()
	if s.Street != game.Preflop {
		for _, a := range all {
			if a.Kind == game.Check {
				return []game.Action{a}
			}
		}
		return all
	}

	potSized := potSizedRaiseAmount(s)

	var out []game.Action
	for _, a := range all {
		switch a.Kind {
		case game.Fold, game.Call, game.Check, game.AllIn:
			out = append(out, a)
		case game.Raise:
			if diff := a.Amount - potSized; diff <= 250 && diff >= -250 {
				out = append(out, a)
			}
		}
	}
	return out
}

// potSizedRaiseAmount approximates amountToCall + (amountToCall + pot),
// i.e. a raise that doubles the pot after calling. pot is the raw sum of
// every seat's chips in front, not AllPots()'s chip-return-adjusted
// figure: mid-hand, before any excess is actually uncalled, that
// adjustment would zero out the uniquely-highest seat's overage and
// undercount the pot this filter is sizing against.
func potSizedRaiseAmount(s *game.GameState) int {
	toCall := 0
	pot := 0
	for _, c := range s.ChipsFront {
		pot += c
	}
	for _, a := range s.PossibleActions() {
		if a.Kind == game.Call {
			toCall = a.Amount
		}
	}
	return 2*toCall + pot
}

// CardAbstraction buckets a seat's private information into a dense
// integer id per street, small enough to index a regret table by.
type CardAbstraction interface {
	// Size returns the number of distinct buckets on street.
	Size(street game.Street) int
	// ID returns the bucket seat's hole/board view falls into on street.
	ID(street game.Street, seat int, deal Deal) int
	// Label renders id on street for diagnostics.
	Label(street game.Street, id int) string
}

// Deal is the full set of private and public cards dealt for one hand,
// as CFR traversal needs to resolve both card buckets and showdown
// payouts from it.
type Deal struct {
	Board card.CardSet
	Holes []card.Hand
}

// ToGameCards adapts d to the shape game.GameState.PayoutsShowdown
// expects.
func (d Deal) ToGameCards() game.GameCards {
	return game.GameCards{Board: d.Board, Holes: d.Holes}
}

// Range169Abstraction buckets every street down to the 169 strategically
// equivalent preflop hole-card classes (pairs, suited and offsuit rank
// combinations), ignoring the board entirely. It is only sound when
// paired with an action abstraction that forces a single line through
// postflop streets (e.g. SimplePreflopAbstraction), since it cannot tell
// postflop hands apart.
type Range169Abstraction struct{}

func (Range169Abstraction) Size(game.Street) int { return card.NumRanks * card.NumRanks }

func (Range169Abstraction) ID(street game.Street, seat int, deal Deal) int {
	return card.Index169(deal.Holes[seat])
}

func (Range169Abstraction) Label(street game.Street, id int) string {
	return card.Label169(id)
}

// SuitNormalizedAbstraction buckets preflop by the 169 range classes.
// Postflop, it first partitions by the board's wetness (card.BoardTexture,
// 4 levels) and only within a texture hashes the suit-isomorphism-
// normalized seven-card union down to a dense bucket — board/hole
// combinations differing only by a suit relabeling always share a
// bucket, and the texture split keeps e.g. a dry ace-high board from
// sharing buckets with a four-flush board regardless of hash collisions.
type SuitNormalizedAbstraction struct{}

// bucketsPerTexture bounds the hashed bucket space within one texture
// level; chosen well above the 169 preflop classes so postflop buckets
// aren't the bottleneck.
const bucketsPerTexture = 2048

func (SuitNormalizedAbstraction) Size(street game.Street) int {
	if street == game.Preflop {
		return card.NumRanks * card.NumRanks
	}
	return 4 * bucketsPerTexture
}

func (SuitNormalizedAbstraction) ID(street game.Street, seat int, deal Deal) int {
	if street == game.Preflop {
		return card.Index169(deal.Holes[seat])
	}
	combined := deal.Board.Combine(deal.Holes[seat].CardSet())
	normalized := card.Normalize(combined)
	texture := card.BoardTexture(deal.Board)
	within := int(uint64(normalized) % bucketsPerTexture)
	return int(texture)*bucketsPerTexture + within
}

func (s SuitNormalizedAbstraction) Label(street game.Street, id int) string {
	if street == game.Preflop {
		return card.Label169(id)
	}
	texture := card.Texture(id / bucketsPerTexture)
	return fmt.Sprintf("%s#%d", texture, id%bucketsPerTexture)
}

// GameAbstraction assigns every encountered game state a dense,
// process-stable integer id and inverts it back, so the solver's regret
// tables can be indexed by [gameID][cardBucket][action] instead of
// walking tree pointers.
type GameAbstraction interface {
	Encode(s *game.GameState) int
	Decode(id int) *game.GameState
}

// Enumerator assigns ids in tree-build order and stores a copy of every
// state it encodes, so Decode can hand a traversal the exact state it
// needs to resolve a showdown.
type Enumerator struct {
	states []game.GameState
}

// NewEnumerator returns an empty id assigner.
func NewEnumerator() *Enumerator { return &Enumerator{} }

func (e *Enumerator) Encode(s *game.GameState) int {
	id := len(e.states)
	e.states = append(e.states, s.Clone())
	return id
}

func (e *Enumerator) Decode(id int) *game.GameState {
	st := e.states[id].Clone()
	return &st
}

// Len returns the number of states encoded so far.
func (e *Enumerator) Len() int { return len(e.states) }
