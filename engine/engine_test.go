package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Chenjox/Decision-Processes-Sandbox/agent"
	"github.com/Chenjox/Decision-Processes-Sandbox/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// counterAgent is a Markov agent pinned in Counter forever.
func counterAgent() agent.Agent {
	return agent.NewMarkovAgent(testRand(), 0, 0, game.Counter)
}

func TestAttackVersusAttackTies(t *testing.T) {
	e := New(agent.NewAttackAgent(), agent.NewAttackAgent(), game.ClassicPayoff())

	outcome, turns := e.Run(game.NewGameState(10))

	require.Equal(t, game.Tie, outcome, "equal simultaneous damage must end in a tie")
	require.Equal(t, 10, turns)
}

func TestMirrorVersusAttackTies(t *testing.T) {
	e := New(agent.NewMirrorAgent(), agent.NewAttackAgent(), game.ClassicPayoff())

	outcome, turns := e.Run(game.NewGameState(10))

	require.Equal(t, game.Tie, outcome, "mirror echoes attack from turn one, reducing to attack vs attack")
	require.Equal(t, 10, turns)
}

func TestCounterBeatsPureAttacker(t *testing.T) {
	e := New(agent.NewAttackAgent(), counterAgent(), game.ClassicPayoff())

	outcome, turns := e.Run(game.NewGameState(10))

	require.Equal(t, game.WinTwo, outcome, "every attack runs into a counter and only the attacker bleeds")
	require.Equal(t, 10, turns)
}

func TestRipostePunishesAttackerTwiceAsFast(t *testing.T) {
	e := New(agent.NewAttackAgent(), counterAgent(), game.RipostePayoff())

	outcome, turns := e.Run(game.NewGameState(10))

	require.Equal(t, game.WinTwo, outcome)
	require.Equal(t, 5, turns)
}

func TestCounterStandoffForcesTieAtTurnCap(t *testing.T) {
	// Under the riposte ruleset a mutual counter deals no damage, so two
	// pinned counter agents would loop forever without the cap.
	e := New(counterAgent(), counterAgent(), game.RipostePayoff())
	e.MaxTurns = 50

	outcome, turns := e.Run(game.NewGameState(10))

	require.Equal(t, game.Tie, outcome)
	require.Equal(t, 50, turns)
}

func TestStepRecordsCommittedActions(t *testing.T) {
	e := New(counterAgent(), agent.NewAttackAgent(), game.ClassicPayoff())
	state := game.NewGameState(10)

	e.Step(state)

	require.NotNil(t, state.PlayerOneAction)
	require.NotNil(t, state.PlayerTwoAction)
	require.Equal(t, game.Counter, *state.PlayerOneAction)
	require.Equal(t, game.Attack, *state.PlayerTwoAction)
}

func TestHitPointsNeverIncrease(t *testing.T) {
	rng := testRand()
	e := New(agent.NewRandomAgent(rng, 0.5), agent.NewRandomAgent(rng, 0.5), game.ClassicPayoff())

	lastOne, lastTwo := 20, 20
	e.OnTurn = func(turn int, state *game.GameState) {
		require.LessOrEqual(t, state.PlayerOne.CurrentHitPoints, lastOne)
		require.LessOrEqual(t, state.PlayerTwo.CurrentHitPoints, lastTwo)
		lastOne = state.PlayerOne.CurrentHitPoints
		lastTwo = state.PlayerTwo.CurrentHitPoints
	}

	outcome, _ := e.Run(game.NewGameState(20))
	require.True(t, outcome.Terminal())
}

func TestTraceWriterRecordsEveryTurn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	trace, err := NewTraceWriter(path)
	require.NoError(t, err)

	e := New(agent.NewAttackAgent(), agent.NewAttackAgent(), game.ClassicPayoff())
	e.OnTurn = trace.Record

	outcome, turns := e.Run(game.NewGameState(3))
	require.Equal(t, game.Tie, outcome)
	require.Equal(t, 3, turns)
	require.NoError(t, trace.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1,2,2\n2,1,1\n3,0,0\n", string(content))
}
