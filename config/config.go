package config

import (
	"fmt"

	"github.com/Chenjox/Decision-Processes-Sandbox/agent"
	"github.com/Chenjox/Decision-Processes-Sandbox/game"
)

// Config is the full process configuration. The core packages consume it
// as a plain record and do not care whether it came from flags, a file or
// the environment.
type Config struct {
	Seed      uint64 `mapstructure:"seed"`
	InitialHP int    `mapstructure:"initial_hp"`
	Trials    int    `mapstructure:"trials"`
	MaxTurns  int    `mapstructure:"max_turns"`
	Workers   int    `mapstructure:"workers"`
	Ruleset   string `mapstructure:"ruleset"`

	Output Output       `mapstructure:"output"`
	Roster []agent.Spec `mapstructure:"roster"`
}

// Output names the export sinks.
type Output struct {
	WinMatrix string `mapstructure:"win_matrix"`
	Pairings  string `mapstructure:"pairings"`
	Trace     string `mapstructure:"trace"`
}

// Default reproduces the classic run: seed 106, 600 hit points, 5000
// trials per pairing under the classic ruleset.
func Default() Config {
	return Config{
		Seed:      106,
		InitialHP: 600,
		Trials:    5000,
		MaxTurns:  10000,
		Workers:   1,
		Ruleset:   "classic",
		Output: Output{
			WinMatrix: "pitting-results.csv",
			Pairings:  "pairing-records.csv",
			Trace:     "results.csv",
		},
	}
}

// PayoffTable resolves the configured ruleset.
func (c Config) PayoffTable() (game.Payoff, error) {
	return game.PayoffByName(c.Ruleset)
}

func (c Config) Validate() error {
	if c.InitialHP <= 0 {
		return fmt.Errorf("initial_hp must be positive, got %d", c.InitialHP)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := game.PayoffByName(c.Ruleset); err != nil {
		return err
	}
	if len(c.Roster) < 1 {
		return fmt.Errorf("roster must name at least one agent")
	}
	return nil
}
