package config

import (
	"testing"

	"github.com/Chenjox/Decision-Processes-Sandbox/agent"
	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := Default()
	cfg.Roster = agent.DefaultRoster()
	return cfg
}

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestDefaultMatchesClassicRun(t *testing.T) {
	cfg := Default()
	require.Equal(t, uint64(106), cfg.Seed)
	require.Equal(t, 600, cfg.InitialHP)
	require.Equal(t, 5000, cfg.Trials)

	payoff, err := cfg.PayoffTable()
	require.NoError(t, err)
	require.Equal(t, game.ClassicPayoff(), payoff)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero hit points", func(c *Config) { c.InitialHP = 0 }},
		{"negative trials", func(c *Config) { c.Trials = -1 }},
		{"zero turn cap", func(c *Config) { c.MaxTurns = 0 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"unknown ruleset", func(c *Config) { c.Ruleset = "brawl" }},
		{"empty roster", func(c *Config) { c.Roster = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
