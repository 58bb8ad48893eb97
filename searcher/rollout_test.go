package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connectfour/game"
)

func TestRollout(t *testing.T) {
	t.Run("terminal state returns its winner without playing", func(t *testing.T) {
		m := newTestMCTS(t, UCT)
		state := mockState{player: game.PlayerB, terminal: true, winner: game.PlayerA}

		winner, played, err := m.rollout(state)

		require.NoError(t, err)
		require.Equal(t, game.PlayerA, winner)
		require.Empty(t, played, "Nothing should be played from a terminal state")
	})

	t.Run("plays to the end and records the moves", func(t *testing.T) {
		m := newTestMCTS(t, UCT)
		terminal := mockState{player: game.PlayerB, terminal: true, winner: game.PlayerB}
		state := mockState{
			player: game.PlayerA,
			moves:  []game.Move{2},
			next:   map[game.Move]game.State{2: terminal},
		}

		winner, played, err := m.rollout(state)

		require.NoError(t, err)
		require.Equal(t, game.PlayerB, winner)
		require.Equal(t, []playedMove{{player: game.PlayerA, move: 2}}, played,
			"Each rollout move should be recorded with its mover")
	})

	t.Run("dead end without terminal verdict is a draw", func(t *testing.T) {
		m := newTestMCTS(t, UCT)
		stuck := mockState{player: game.PlayerB} // no moves, not terminal
		state := mockState{
			player: game.PlayerA,
			moves:  []game.Move{0},
			next:   map[game.Move]game.State{0: stuck},
		}

		winner, played, err := m.rollout(state)

		require.NoError(t, err)
		require.Equal(t, game.Nobody, winner, "Exhausted moves without a winner score as a draw")
		require.Len(t, played, 1)
	})

	t.Run("endless game trips the playout cap", func(t *testing.T) {
		m := newTestMCTS(t, UCT, WithPlayoutCap(16))
		state := mockState{player: game.PlayerA, moves: []game.Move{0, 1}} // never terminates

		_, _, err := m.rollout(state)

		require.ErrorIs(t, err, ErrRolloutNonTermination,
			"A rollout exceeding the cap must fail loudly, not score silently")
	})
}
