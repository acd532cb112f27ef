package game

import "fmt"

// Payoff is the fixed table mapping a pair of committed actions to hit
// point deltas. The magnitudes differ between observed rulesets, so they
// are named configuration rather than literals baked into the engine.
type Payoff struct {
	// MutualAttack is each side's delta when both attack.
	MutualAttack int `mapstructure:"mutual_attack"`
	// FailedAttack is the attacker's delta when the attack runs into a
	// counter. The countering side takes no damage.
	FailedAttack int `mapstructure:"failed_attack"`
	// MutualCounter is each side's delta when both counter.
	MutualCounter int `mapstructure:"mutual_counter"`
}

// ClassicPayoff is the original ruleset: every exchange chips one hit
// point off whoever did not land a clean counter, and a mutual counter
// bleeds both sides.
func ClassicPayoff() Payoff {
	return Payoff{MutualAttack: -1, FailedAttack: -1, MutualCounter: -1}
}

// RipostePayoff rewards a clean counter with double damage and makes a
// mutual counter a harmless standoff.
func RipostePayoff() Payoff {
	return Payoff{MutualAttack: -1, FailedAttack: -2, MutualCounter: 0}
}

// PayoffByName resolves a ruleset from its configuration name.
func PayoffByName(name string) (Payoff, error) {
	switch name {
	case "classic":
		return ClassicPayoff(), nil
	case "riposte":
		return RipostePayoff(), nil
	}
	return Payoff{}, fmt.Errorf("unknown ruleset %q", name)
}

// Resolve applies one simultaneous exchange to the state and records both
// committed actions for the next turn's observers.
func (p Payoff) Resolve(state *GameState, one, two Action) {
	switch {
	case one == Attack && two == Attack:
		state.PlayerOne.CurrentHitPoints += p.MutualAttack
		state.PlayerTwo.CurrentHitPoints += p.MutualAttack
	case one == Attack && two == Counter:
		state.PlayerOne.CurrentHitPoints += p.FailedAttack
	case one == Counter && two == Attack:
		state.PlayerTwo.CurrentHitPoints += p.FailedAttack
	default:
		state.PlayerOne.CurrentHitPoints += p.MutualCounter
		state.PlayerTwo.CurrentHitPoints += p.MutualCounter
	}

	a1, a2 := one, two
	state.PlayerOneAction = &a1
	state.PlayerTwoAction = &a2
}
