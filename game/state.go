package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is an immutable Connect-4 position. Play returns a fresh copy,
// so a state handed to a searcher never changes under it.
type GameState struct {
	board  Board
	turn   Player
	winner Player
	over   bool
}

// NewGameState returns the empty board with PlayerA to move.
func NewGameState() GameState {
	return GameState{turn: PlayerA}
}

// Player returns the player to move.
func (gs GameState) Player() Player {
	return gs.turn
}

// LegalMoves returns the columns that still accept a disc. Terminal
// positions have no legal moves.
func (gs GameState) LegalMoves() []Move {
	if gs.over {
		return nil
	}
	moves := make([]Move, 0, Columns)
	for col := Move(0); col < Columns; col++ {
		if !gs.board.ColumnFull(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// Play drops the current player's disc into the given column and returns
// the successor position. The receiver is left untouched.
func (gs GameState) Play(move Move) State {
	if move < 0 || move >= Columns || gs.board.ColumnFull(move) || gs.over {
		panic(fmt.Sprintf("illegal move %d for %s", move, gs.turn))
	}

	next := gs // value copy, including the board
	next.board.drop(move, gs.turn)
	next.winner = next.board.winner()
	next.over = next.winner != Nobody || next.board.Full()
	next.turn = gs.turn.Opponent()
	return next
}

// IsTerminal reports whether the game is decided or drawn.
func (gs GameState) IsTerminal() bool {
	return gs.over
}

// Winner returns the winning player, or Nobody while the game is running
// and on a draw.
func (gs GameState) Winner() Player {
	return gs.winner
}

// Board exposes the grid for rendering.
func (gs GameState) Board() Board {
	return gs.board
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int8(gs.turn))
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			binary.Write(hasher, binary.LittleEndian, int8(gs.board.cells[y][x]))
		}
	}

	return StateHash(hasher.Sum64())
}
