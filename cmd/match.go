package cmd

import (
	"fmt"
	"strconv"

	"github.com/Chenjox/Decision-Processes-Sandbox/engine"
	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var matchCmd = &cobra.Command{
	Use:   "match [one] [two]",
	Short: "Plays a single traced duel between two roster entries",
	Long: `Plays one duel between the roster entries at the given indices
(default 0 and 1) and writes a per-turn hit point trace as CSV.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		payoff, err := cfg.PayoffTable()
		if err != nil {
			return err
		}

		indexOne, indexTwo := 0, 1
		if len(args) > 0 {
			if indexOne, err = rosterIndex(args[0], len(cfg.Roster)); err != nil {
				return err
			}
		}
		if len(args) > 1 {
			if indexTwo, err = rosterIndex(args[1], len(cfg.Roster)); err != nil {
				return err
			}
		}
		if indexTwo >= len(cfg.Roster) {
			return fmt.Errorf("roster has %d entries, cannot default to entry 1", len(cfg.Roster))
		}

		rng := rand.New(rand.NewSource(cfg.Seed))
		one, err := cfg.Roster[indexOne].Build(rng)
		if err != nil {
			return err
		}
		two, err := cfg.Roster[indexTwo].Build(rng)
		if err != nil {
			return err
		}

		trace, err := engine.NewTraceWriter(cfg.Output.Trace)
		if err != nil {
			return err
		}

		e := engine.New(one, two, payoff)
		e.MaxTurns = cfg.MaxTurns
		e.OnTurn = func(turn int, state *game.GameState) {
			trace.Record(turn, state)
			log.Debug().
				Int("turn", turn).
				Int("player_one_hp", state.PlayerOne.CurrentHitPoints).
				Int("player_two_hp", state.PlayerTwo.CurrentHitPoints).
				Msg("turn resolved")
		}

		state := game.NewGameState(cfg.InitialHP)
		outcome, turns := e.Run(state)

		event := log.Info().
			Int("turns", turns).
			Str("player_one", one.Name()).
			Str("player_two", two.Name()).
			Int("player_one_hp", state.PlayerOne.CurrentHitPoints).
			Int("player_two_hp", state.PlayerTwo.CurrentHitPoints)
		if winner := outcome.Winner(); winner != 0 {
			event.Msgf("player %d wins", winner)
		} else {
			event.Msg("match ended in a tie")
		}

		if err := trace.Close(); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.Trace).Msg("stored match trace")
		return nil
	},
}

func rosterIndex(arg string, rosterSize int) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("roster index must be an integer, got %q", arg)
	}
	if index < 0 || index >= rosterSize {
		return 0, fmt.Errorf("roster index %d out of range [0,%d)", index, rosterSize)
	}
	return index, nil
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
