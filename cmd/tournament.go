package cmd

import (
	"strconv"
	"strings"

	"github.com/Chenjox/Decision-Processes-Sandbox/config"
	"github.com/Chenjox/Decision-Processes-Sandbox/tournament"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "Pits every ordered agent pairing against each other and exports the win matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		payoff, err := cfg.PayoffTable()
		if err != nil {
			return err
		}

		log.Info().
			Int("agents", len(cfg.Roster)).
			Int("trials", cfg.Trials).
			Uint64("seed", cfg.Seed).
			Int("workers", cfg.Workers).
			Msg("starting tournament")

		result, err := tournament.Run(cfg.Roster, tournament.Config{
			Trials:    cfg.Trials,
			InitialHP: cfg.InitialHP,
			Payoff:    payoff,
			MaxTurns:  cfg.MaxTurns,
			Seed:      cfg.Seed,
			Workers:   cfg.Workers,
		})
		if err != nil {
			return err
		}

		logWinMatrix(result)

		if err := tournament.WriteWinMatrix(cfg.Output.WinMatrix, result.Matrix); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.WinMatrix).Msg("stored win matrix")

		if err := tournament.WritePairingRecords(cfg.Output.Pairings, result, cfg.Trials); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.Pairings).Msg("stored pairing records")

		return nil
	},
}

func logWinMatrix(result *tournament.Result) {
	size := result.Matrix.Size()
	for winner := 0; winner < size; winner++ {
		cells := make([]string, size)
		for loser := 0; loser < size; loser++ {
			cells[loser] = strconv.Itoa(result.Matrix.Wins(winner, loser))
		}
		log.Info().
			Str("agent", result.Names[winner]).
			Str("wins", strings.Join(cells, " ")).
			Msgf("matrix row %d", winner)
	}
}

func init() {
	defaults := config.Default()
	tournamentCmd.Flags().Int("trials", defaults.Trials, "independent matches per ordered pairing")
	tournamentCmd.Flags().Int("workers", 1, "concurrent pairings, each with its own derived random source")

	viper.BindPFlag("trials", tournamentCmd.Flags().Lookup("trials"))
	viper.BindPFlag("workers", tournamentCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(tournamentCmd)
}
