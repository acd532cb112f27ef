package agent

import (
	"fmt"

	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"golang.org/x/exp/rand"
)

// MarkovAgent commits to a strategy and switches it stochastically: while
// attacking it flips to countering with probability switchToCounter, while
// countering it flips back with probability switchToAttack. The committed
// strategy persists across turns within one match; trials start from a
// fresh clone, so it never carries over between matches.
type MarkovAgent struct {
	rng             *rand.Rand
	switchToAttack  float64
	switchToCounter float64
	current         game.Action
}

func NewMarkovAgent(rng *rand.Rand, switchToAttack, switchToCounter float64, initial game.Action) *MarkovAgent {
	return &MarkovAgent{
		rng:             rng,
		switchToAttack:  switchToAttack,
		switchToCounter: switchToCounter,
		current:         initial,
	}
}

func (m *MarkovAgent) DecideAction(_ game.PlayerState, _ *game.Action, _ *game.PlayerState) game.Action {
	switch m.current {
	case game.Attack:
		if chance(m.rng, m.switchToCounter) {
			m.current = game.Counter
		}
	case game.Counter:
		if chance(m.rng, m.switchToAttack) {
			m.current = game.Attack
		}
	}
	return m.current
}

func (m *MarkovAgent) Name() string {
	return fmt.Sprintf("Markov a=%v c=%v", m.switchToAttack, m.switchToCounter)
}

func (m *MarkovAgent) Clone() Agent {
	return &MarkovAgent{
		rng:             m.rng,
		switchToAttack:  m.switchToAttack,
		switchToCounter: m.switchToCounter,
		current:         m.current,
	}
}
