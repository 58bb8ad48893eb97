package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// playAll applies the moves in order, alternating players from the given
// starting state.
func playAll(t *testing.T, state State, moves ...Move) State {
	t.Helper()
	for _, move := range moves {
		state = state.Play(move)
	}
	return state
}

func TestNewGameState(t *testing.T) {
	state := NewGameState()

	require.Equal(t, PlayerA, state.Player(), "PlayerA should move first")
	require.False(t, state.IsTerminal(), "Empty board should not be terminal")
	require.Equal(t, Nobody, state.Winner(), "Empty board should have no winner")
	require.Len(t, state.LegalMoves(), Columns, "Every column should be playable")
}

func TestPlay(t *testing.T) {
	t.Run("discs stack from the bottom", func(t *testing.T) {
		state := playAll(t, NewGameState(), 3, 3, 3).(GameState)

		board := state.Board()
		require.Equal(t, PlayerA, board.Cell(0, 3), "First disc should land on row 0")
		require.Equal(t, PlayerB, board.Cell(1, 3), "Second disc should stack on row 1")
		require.Equal(t, PlayerA, board.Cell(2, 3), "Third disc should stack on row 2")
		require.Equal(t, PlayerB, state.Player(), "Turn should alternate after each move")
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		before := NewGameState()

		_ = before.Play(0)

		board := before.Board()
		require.Equal(t, Nobody, board.Cell(0, 0), "Play should return a copy, not mutate")
		require.Equal(t, PlayerA, before.Player(), "Turn should be unchanged on the original")
	})

	t.Run("full column is excluded from legal moves", func(t *testing.T) {
		state := playAll(t, NewGameState(), 0, 0, 0, 0, 0, 0)

		require.Len(t, state.LegalMoves(), Columns-1, "Full column should not be playable")
		require.NotContains(t, state.LegalMoves(), Move(0), "Column 0 should be full")
	})

	t.Run("panics on a full column", func(t *testing.T) {
		state := playAll(t, NewGameState(), 0, 0, 0, 0, 0, 0)

		require.Panics(t, func() { state.Play(0) }, "Dropping into a full column should panic")
	})

	t.Run("panics on an out-of-range column", func(t *testing.T) {
		state := NewGameState()

		require.Panics(t, func() { state.Play(Columns) }, "Out-of-range column should panic")
		require.Panics(t, func() { state.Play(-1) }, "Negative column should panic")
	})
}

func TestWinDetection(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		// A builds 0-3 on the bottom row; B stacks harmlessly
		state := playAll(t, NewGameState(), 0, 6, 1, 6, 2, 5, 3)

		require.True(t, state.IsTerminal(), "Four in a row should end the game")
		require.Equal(t, PlayerA, state.Winner(), "PlayerA should win")
		require.Empty(t, state.LegalMoves(), "Terminal position should have no legal moves")
	})

	t.Run("vertical", func(t *testing.T) {
		state := playAll(t, NewGameState(), 3, 0, 3, 1, 3, 2, 3)

		require.True(t, state.IsTerminal(), "Four stacked discs should end the game")
		require.Equal(t, PlayerA, state.Winner(), "PlayerA should win")
	})

	t.Run("rising diagonal", func(t *testing.T) {
		board := boardFromRows(t,
			".......",
			".......",
			"...A...",
			"..AB...",
			".ABB...",
			"ABAB...",
		)
		require.Equal(t, PlayerA, board.winner(), "Rising diagonal should be detected")
	})

	t.Run("falling diagonal", func(t *testing.T) {
		board := boardFromRows(t,
			".......",
			".......",
			"...B...",
			"...AB..",
			"...ABB.",
			"...AAAB",
		)
		require.Equal(t, PlayerB, board.winner(), "Falling diagonal should be detected")
	})

	t.Run("no winner on sparse board", func(t *testing.T) {
		board := boardFromRows(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"AABB.AB",
		)
		require.Equal(t, Nobody, board.winner(), "Three in a row should not win")
	})
}

func TestFullBoardDraw(t *testing.T) {
	// Brick pattern: vertical pairs, no four in a row anywhere
	board := boardFromRows(t,
		"ABABABA",
		"ABABABA",
		"BABABAB",
		"BABABAB",
		"ABABABA",
		"ABABABA",
	)

	require.True(t, board.Full(), "Board should be completely filled")
	require.Equal(t, Nobody, board.winner(), "Brick pattern should have no winner")
}

func TestHash(t *testing.T) {
	a := NewGameState()
	b := NewGameState()

	require.Equal(t, a.Hash(), b.Hash(), "Identical positions should hash equally")

	c := a.Play(3)
	require.NotEqual(t, a.Hash(), c.Hash(), "Different positions should hash differently")

	d := NewGameState().Play(3)
	require.Equal(t, c.Hash(), d.Hash(), "Same position reached the same way should hash equally")
}

func TestPlayerOpponent(t *testing.T) {
	require.Equal(t, PlayerB, PlayerA.Opponent())
	require.Equal(t, PlayerA, PlayerB.Opponent())
	require.Equal(t, Nobody, Nobody.Opponent())
}

// boardFromRows builds a board from a top-to-bottom string picture using
// 'A', 'B' and '.' cells.
func boardFromRows(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Rows, "Picture should have one string per row")

	var board Board
	for i, picture := range rows {
		require.Len(t, picture, Columns, "Picture row should have one rune per column")
		row := Rows - 1 - i
		for col, r := range picture {
			switch r {
			case 'A':
				board.cells[row][col] = PlayerA
			case 'B':
				board.cells[row][col] = PlayerB
			case '.':
				continue
			default:
				t.Fatalf("unexpected cell %q", r)
			}
			board.height[col]++
			board.filled++
		}
	}
	return board
}
