package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Chenjox/Decision-Processes-Sandbox/agent"
	"github.com/Chenjox/Decision-Processes-Sandbox/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "duelsim",
	Short: "Simulates duels between autonomous decision-making agents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return initializeConfig()
	},
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./duelsim.yaml)")
	rootCmd.PersistentFlags().Uint64("seed", defaults.Seed, "seed for the shared random source")
	rootCmd.PersistentFlags().Int("initial-hp", defaults.InitialHP, "starting hit points per side")
	rootCmd.PersistentFlags().String("ruleset", defaults.Ruleset, "payoff ruleset (classic or riposte)")
	rootCmd.PersistentFlags().Int("max-turns", defaults.MaxTurns, "turn cap before a match is forced to a tie")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("initial_hp", rootCmd.PersistentFlags().Lookup("initial-hp"))
	viper.BindPFlag("ruleset", rootCmd.PersistentFlags().Lookup("ruleset"))
	viper.BindPFlag("max_turns", rootCmd.PersistentFlags().Lookup("max-turns"))
}

func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("duelsim")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DUELSIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, flags and env carry the run.
	}
	return nil
}

// loadConfig materializes the merged configuration, falling back to the
// classic roster when none is configured.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(cfg.Roster) == 0 {
		cfg.Roster = agent.DefaultRoster()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
