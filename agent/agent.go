package agent

import (
	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"golang.org/x/exp/rand"
)

// Agent is a strategy playing one side of a duel. DecideAction is called
// once per turn per side; opponentLast is nil on the very first turn, and
// opponent is nil unless the ruleset discloses the other side's state.
//
// Implementations may keep per-match counters. Clone must return an agent
// with identical parameters and fully independent mutable state; only
// deliberately shared resources, such as an injected random source, remain
// shared by reference.
type Agent interface {
	DecideAction(own game.PlayerState, opponentLast *game.Action, opponent *game.PlayerState) game.Action
	Name() string
	Clone() Agent
}

// chance draws a biased coin from the shared source.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
