package agent

import (
	"fmt"

	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"golang.org/x/exp/rand"
)

// Kind selects a strategy implementation.
type Kind string

const (
	KindAlwaysAttack Kind = "always-attack"
	KindMirror       Kind = "mirror"
	KindRandom       Kind = "random"
	KindMarkov       Kind = "markov"
	KindOneStep      Kind = "one-step"
)

// Spec is a roster entry: everything needed to build a fresh agent against
// a caller-supplied random source. Building from the spec, rather than
// reusing a long-lived instance, keeps per-match state from leaking
// between trials and lets parallel runs inject per-pairing sources.
type Spec struct {
	Kind Kind `mapstructure:"kind"`

	// Random
	AttackProbability float64 `mapstructure:"attack_probability"`

	// Markov
	SwitchToAttack  float64 `mapstructure:"switch_to_attack"`
	SwitchToCounter float64 `mapstructure:"switch_to_counter"`
	InitialAction   string  `mapstructure:"initial_action"`

	// One-step estimator
	RewardCounteredAttack float64 `mapstructure:"reward_countered_attack"`
	RewardCleanCounter    float64 `mapstructure:"reward_clean_counter"`
	RewardExchange        float64 `mapstructure:"reward_exchange"`
}

// Build constructs the agent this spec describes. Stochastic agents hold
// the given source by reference.
func (s Spec) Build(rng *rand.Rand) (Agent, error) {
	switch s.Kind {
	case KindAlwaysAttack:
		return NewAttackAgent(), nil
	case KindMirror:
		return NewMirrorAgent(), nil
	case KindRandom:
		if err := checkProbability("attack_probability", s.AttackProbability); err != nil {
			return nil, err
		}
		return NewRandomAgent(rng, s.AttackProbability), nil
	case KindMarkov:
		if err := checkProbability("switch_to_attack", s.SwitchToAttack); err != nil {
			return nil, err
		}
		if err := checkProbability("switch_to_counter", s.SwitchToCounter); err != nil {
			return nil, err
		}
		initial := game.Attack
		if s.InitialAction != "" {
			parsed, err := game.ParseAction(s.InitialAction)
			if err != nil {
				return nil, fmt.Errorf("invalid initial_action: %w", err)
			}
			initial = parsed
		}
		return NewMarkovAgent(rng, s.SwitchToAttack, s.SwitchToCounter, initial), nil
	case KindOneStep:
		return NewOneStepAgent(s.RewardCounteredAttack, s.RewardCleanCounter, s.RewardExchange), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", s.Kind)
}

func checkProbability(field string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be in [0,1], got %v", field, p)
	}
	return nil
}

// DefaultRoster is the classic pitting line-up: a sweep of fixed-probability
// attackers, a pure attacker, a grid of Markov switchers started in Attack,
// a mirror, and a one-step estimator.
func DefaultRoster() []Spec {
	roster := []Spec{}
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		roster = append(roster, Spec{Kind: KindRandom, AttackProbability: p})
	}
	roster = append(roster, Spec{Kind: KindAlwaysAttack})
	for _, toCounter := range []float64{0.1, 0.5, 0.9} {
		for _, toAttack := range []float64{0.1, 0.5, 0.9} {
			roster = append(roster, Spec{
				Kind:            KindMarkov,
				SwitchToAttack:  toAttack,
				SwitchToCounter: toCounter,
				InitialAction:   "attack",
			})
		}
	}
	roster = append(roster, Spec{Kind: KindMirror})
	roster = append(roster, Spec{
		Kind:                  KindOneStep,
		RewardCounteredAttack: -3,
		RewardCleanCounter:    -1,
		RewardExchange:        -3,
	})
	return roster
}
