package engine

import (
	"fmt"

	"github.com/Chenjox/Decision-Processes-Sandbox/agent"
	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"github.com/rs/zerolog/log"
)

// MaxTurns caps a match so an all-counter standoff under a zero-damage
// ruleset cannot spin forever. Hitting the cap resolves as a forced tie.
const MaxTurns = 10000

// Engine plays one duel between two agents under a fixed payoff table.
type Engine struct {
	PlayerOne agent.Agent
	PlayerTwo agent.Agent
	Payoff    game.Payoff
	MaxTurns  int

	// OnTurn, when set, observes the state after every resolved turn.
	OnTurn func(turn int, state *game.GameState)
}

func New(one, two agent.Agent, payoff game.Payoff) *Engine {
	return &Engine{
		PlayerOne: one,
		PlayerTwo: two,
		Payoff:    payoff,
		MaxTurns:  MaxTurns,
	}
}

// Step resolves a single turn: both agents commit simultaneously, seeing
// only the opponent's previous action, then the payoff table applies.
func (e *Engine) Step(state *game.GameState) {
	one := e.PlayerOne.DecideAction(state.PlayerOne, state.PlayerTwoAction, nil)
	two := e.PlayerTwo.DecideAction(state.PlayerTwo, state.PlayerOneAction, nil)
	e.Payoff.Resolve(state, one, two)
}

// Run plays the given state to a terminal outcome and reports the number
// of turns taken. A match that survives MaxTurns is forced to a tie.
func (e *Engine) Run(state *game.GameState) (game.Outcome, int) {
	maxTurns := e.MaxTurns
	if maxTurns <= 0 {
		maxTurns = MaxTurns
	}

	for turn := 1; turn <= maxTurns; turn++ {
		e.Step(state)
		if e.OnTurn != nil {
			e.OnTurn(turn, state)
		}

		outcome := state.Outcome()
		if outcome.Terminal() {
			return outcome, turn
		}
		if outcome != game.Continue {
			// Turn resolution and the terminal check disagree. There is no
			// sane way to keep playing.
			panic(fmt.Sprintf("engine: impossible outcome %v after turn %d", outcome, turn))
		}
	}

	log.Warn().
		Int("max_turns", maxTurns).
		Str("player_one", e.PlayerOne.Name()).
		Str("player_two", e.PlayerTwo.Name()).
		Msg("turn cap reached, forcing a tie")
	return game.Tie, maxTurns
}
