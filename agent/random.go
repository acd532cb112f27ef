package agent

import (
	"fmt"

	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"golang.org/x/exp/rand"
)

// RandomAgent attacks with a fixed probability each turn, independently of
// anything either side has done before.
type RandomAgent struct {
	rng               *rand.Rand
	attackProbability float64
}

func NewRandomAgent(rng *rand.Rand, attackProbability float64) *RandomAgent {
	return &RandomAgent{rng: rng, attackProbability: attackProbability}
}

func (r *RandomAgent) DecideAction(_ game.PlayerState, _ *game.Action, _ *game.PlayerState) game.Action {
	if chance(r.rng, r.attackProbability) {
		return game.Attack
	}
	return game.Counter
}

func (r *RandomAgent) Name() string {
	return fmt.Sprintf("Random p=%v", r.attackProbability)
}

func (r *RandomAgent) Clone() Agent {
	return &RandomAgent{rng: r.rng, attackProbability: r.attackProbability}
}
