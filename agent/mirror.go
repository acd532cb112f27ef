package agent

import "github.com/Chenjox/Decision-Processes-Sandbox/game"

// MirrorAgent repeats the opponent's most recent action. On the first turn
// there is nothing to mirror yet, so it attacks.
type MirrorAgent struct{}

func NewMirrorAgent() *MirrorAgent {
	return &MirrorAgent{}
}

func (m *MirrorAgent) DecideAction(_ game.PlayerState, opponentLast *game.Action, _ *game.PlayerState) game.Action {
	if opponentLast != nil {
		return *opponentLast
	}
	return game.Attack
}

func (m *MirrorAgent) Name() string {
	return "Mirror"
}

func (m *MirrorAgent) Clone() Agent {
	return &MirrorAgent{}
}
