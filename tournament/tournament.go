package tournament

import (
	"fmt"

	"github.com/Chenjox/Decision-Processes-Sandbox/agent"
	"github.com/Chenjox/Decision-Processes-Sandbox/engine"
	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Config drives one full tournament run.
type Config struct {
	// Trials is the number of independent matches per ordered pairing.
	Trials int
	// InitialHP is both sides' starting hit points in every match.
	InitialHP int
	// Payoff is the ruleset applied to every match.
	Payoff game.Payoff
	// MaxTurns caps each match; 0 falls back to engine.MaxTurns.
	MaxTurns int
	// Seed initializes the shared random source, and in parallel runs the
	// per-pairing sources derived from it.
	Seed uint64
	// Workers > 1 runs pairings concurrently, each with its own source.
	Workers int
}

func (c Config) validate(rosterSize int) error {
	if rosterSize == 0 {
		return fmt.Errorf("roster is empty")
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.InitialHP <= 0 {
		return fmt.Errorf("initial hit points must be positive, got %d", c.InitialHP)
	}
	return nil
}

// PairingRecord summarizes the trials of one ordered pairing.
type PairingRecord struct {
	PlayerOne  int // roster index of the side playing player one
	PlayerTwo  int
	WinsOne    int
	WinsTwo    int
	Ties       int
	TotalTurns int
}

// AverageTurns is the mean match length of this pairing in turns.
func (r PairingRecord) AverageTurns(trials int) float64 {
	if trials == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(trials)
}

// Result is everything one tournament run produces.
type Result struct {
	Names    []string
	Matrix   *WinMatrix
	Pairings []PairingRecord
}

// Run plays every ordered pairing of the roster, including an agent
// against itself, for Trials independent matches each, and accumulates
// wins into the matrix. Each trial starts from a fresh state and freshly
// cloned agents, so no strategy state leaks between trials or sides.
func Run(roster []agent.Spec, cfg Config) (*Result, error) {
	if err := cfg.validate(len(roster)); err != nil {
		return nil, err
	}
	if cfg.Workers > 1 {
		return runParallel(roster, cfg)
	}
	return runSequential(roster, cfg)
}

// runSequential threads one shared random source through every agent, the
// way a single-threaded run owns its randomness. Pairing order is fixed
// (row-major, trial-major inside), so a seed fully determines the matrix.
func runSequential(roster []agent.Spec, cfg Config) (*Result, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	agents := make([]agent.Agent, len(roster))
	for i, spec := range roster {
		built, err := spec.Build(rng)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		agents[i] = built
	}

	n := len(agents)
	result := &Result{
		Names:    names(agents),
		Matrix:   NewWinMatrix(n),
		Pairings: make([]PairingRecord, 0, n*n),
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			record := runPairing(agents[i], agents[j], i, j, cfg)
			result.Matrix.addPairing(record)
			result.Pairings = append(result.Pairings, record)

			log.Info().
				Str("player_one", agents[i].Name()).
				Str("player_two", agents[j].Name()).
				Int("wins_one", record.WinsOne).
				Int("wins_two", record.WinsTwo).
				Int("ties", record.Ties).
				Msg("completed pairing")
		}
	}

	return result, nil
}

// runParallel gives every ordered pairing its own random source derived
// from the seed and the pairing index, and its own result slot. Sharing
// one mutating source across concurrent matches would race; deriving per
// pairing keeps the run reproducible for any worker count.
func runParallel(roster []agent.Spec, cfg Config) (*Result, error) {
	n := len(roster)
	records := make([]PairingRecord, n*n)

	var group errgroup.Group
	group.SetLimit(cfg.Workers)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			i, j := i, j
			idx := i*n + j
			group.Go(func() error {
				rng := rand.New(rand.NewSource(cfg.Seed + uint64(idx) + 1))
				one, err := roster[i].Build(rng)
				if err != nil {
					return fmt.Errorf("roster entry %d: %w", i, err)
				}
				two, err := roster[j].Build(rng)
				if err != nil {
					return fmt.Errorf("roster entry %d: %w", j, err)
				}
				records[idx] = runPairing(one, two, i, j, cfg)
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Fold sequentially so the matrix is identical for any worker count.
	result := &Result{
		Matrix:   NewWinMatrix(n),
		Pairings: records,
	}
	for _, record := range records {
		result.Matrix.addPairing(record)
	}

	nameRng := rand.New(rand.NewSource(cfg.Seed))
	built := make([]agent.Agent, n)
	for i, spec := range roster {
		a, err := spec.Build(nameRng)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		built[i] = a
	}
	result.Names = names(built)

	return result, nil
}

// runPairing plays all trials of one ordered pairing. Agents are cloned
// per trial so per-match counters reset, matching a fresh instance from
// the template.
func runPairing(one, two agent.Agent, i, j int, cfg Config) PairingRecord {
	record := PairingRecord{PlayerOne: i, PlayerTwo: j}

	for trial := 0; trial < cfg.Trials; trial++ {
		e := engine.New(one.Clone(), two.Clone(), cfg.Payoff)
		if cfg.MaxTurns > 0 {
			e.MaxTurns = cfg.MaxTurns
		}

		state := game.NewGameState(cfg.InitialHP)
		outcome, turns := e.Run(state)
		record.TotalTurns += turns

		switch outcome {
		case game.WinOne:
			record.WinsOne++
		case game.WinTwo:
			record.WinsTwo++
		case game.Tie:
			record.Ties++
		}
	}

	return record
}

func names(agents []agent.Agent) []string {
	out := make([]string, len(agents))
	for i, a := range agents {
		out[i] = a.Name()
	}
	return out
}
