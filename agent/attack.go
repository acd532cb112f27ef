package agent

import "github.com/Chenjox/Decision-Processes-Sandbox/game"

// AttackAgent attacks every turn, no matter what.
type AttackAgent struct{}

func NewAttackAgent() *AttackAgent {
	return &AttackAgent{}
}

func (a *AttackAgent) DecideAction(_ game.PlayerState, _ *game.Action, _ *game.PlayerState) game.Action {
	return game.Attack
}

func (a *AttackAgent) Name() string {
	return "Always Attack"
}

func (a *AttackAgent) Clone() Agent {
	return &AttackAgent{}
}
