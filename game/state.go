package game

// PlayerState tracks one side's hit points within a single match. Only the
// turn-resolution step mutates it.
type PlayerState struct {
	MaxHitPoints     int
	CurrentHitPoints int
}

// Defeated reports whether this side has run out of hit points.
func (p PlayerState) Defeated() bool {
	return p.CurrentHitPoints <= 0
}

// GameState is the full state of one match: both sides' hit points plus
// each side's most recently committed action. Strategies that react to the
// opponent (mirroring, probability estimation) read the last actions; nil
// means no turn has been resolved yet. A GameState is created fresh per
// match and discarded with it.
type GameState struct {
	PlayerOne PlayerState
	PlayerTwo PlayerState

	PlayerOneAction *Action
	PlayerTwoAction *Action
}

// NewGameState starts both sides at full hit points with no actions played.
func NewGameState(initialHP int) *GameState {
	full := PlayerState{MaxHitPoints: initialHP, CurrentHitPoints: initialHP}
	return &GameState{PlayerOne: full, PlayerTwo: full}
}

// Outcome checks the terminal conditions. A double knockout is a tie and
// takes priority over either single-side loss.
func (s *GameState) Outcome() Outcome {
	if s.PlayerOne.Defeated() && s.PlayerTwo.Defeated() {
		return Tie
	}
	if s.PlayerOne.Defeated() {
		return WinTwo
	}
	if s.PlayerTwo.Defeated() {
		return WinOne
	}
	return Continue
}
