package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayoffResolve(t *testing.T) {
	cases := []struct {
		name     string
		payoff   Payoff
		one, two Action
		deltaOne int
		deltaTwo int
	}{
		{"classic mutual attack", ClassicPayoff(), Attack, Attack, -1, -1},
		{"classic attack into counter", ClassicPayoff(), Attack, Counter, -1, 0},
		{"classic counter catches attack", ClassicPayoff(), Counter, Attack, 0, -1},
		{"classic mutual counter", ClassicPayoff(), Counter, Counter, -1, -1},
		{"riposte mutual attack", RipostePayoff(), Attack, Attack, -1, -1},
		{"riposte attack into counter", RipostePayoff(), Attack, Counter, -2, 0},
		{"riposte counter catches attack", RipostePayoff(), Counter, Attack, 0, -2},
		{"riposte mutual counter", RipostePayoff(), Counter, Counter, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := NewGameState(10)

			tc.payoff.Resolve(state, tc.one, tc.two)

			require.Equal(t, 10+tc.deltaOne, state.PlayerOne.CurrentHitPoints)
			require.Equal(t, 10+tc.deltaTwo, state.PlayerTwo.CurrentHitPoints)
			require.NotNil(t, state.PlayerOneAction, "resolved turn should record player one's action")
			require.NotNil(t, state.PlayerTwoAction, "resolved turn should record player two's action")
			require.Equal(t, tc.one, *state.PlayerOneAction)
			require.Equal(t, tc.two, *state.PlayerTwoAction)
		})
	}
}

func TestPayoffByName(t *testing.T) {
	classic, err := PayoffByName("classic")
	require.NoError(t, err)
	require.Equal(t, ClassicPayoff(), classic)

	riposte, err := PayoffByName("riposte")
	require.NoError(t, err)
	require.Equal(t, RipostePayoff(), riposte)

	_, err = PayoffByName("brawl")
	require.Error(t, err)
}

func TestOutcome(t *testing.T) {
	t.Run("fresh state continues", func(t *testing.T) {
		state := NewGameState(5)
		require.Equal(t, Continue, state.Outcome())
	})

	t.Run("double knockout is a tie", func(t *testing.T) {
		state := NewGameState(5)
		state.PlayerOne.CurrentHitPoints = 0
		state.PlayerTwo.CurrentHitPoints = -1
		require.Equal(t, Tie, state.Outcome(), "a tie takes priority over either single-side loss")
	})

	t.Run("player one down means player two wins", func(t *testing.T) {
		state := NewGameState(5)
		state.PlayerOne.CurrentHitPoints = 0
		require.Equal(t, WinTwo, state.Outcome())
	})

	t.Run("player two down means player one wins", func(t *testing.T) {
		state := NewGameState(5)
		state.PlayerTwo.CurrentHitPoints = -2
		require.Equal(t, WinOne, state.Outcome())
	})
}

func TestOutcomeHelpers(t *testing.T) {
	require.True(t, WinOne.Terminal())
	require.True(t, WinTwo.Terminal())
	require.True(t, Tie.Terminal())
	require.False(t, Continue.Terminal())
	require.False(t, Interrupted.Terminal())

	require.Equal(t, 1, WinOne.Winner())
	require.Equal(t, 2, WinTwo.Winner())
	require.Equal(t, 0, Tie.Winner())
	require.Equal(t, 0, Continue.Winner())
}

func TestParseAction(t *testing.T) {
	attack, err := ParseAction("attack")
	require.NoError(t, err)
	require.Equal(t, Attack, attack)

	counter, err := ParseAction("counter")
	require.NoError(t, err)
	require.Equal(t, Counter, counter)

	_, err = ParseAction("parry")
	require.Error(t, err)
}
