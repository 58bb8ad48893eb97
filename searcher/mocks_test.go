package searcher

import "connectfour/game"

// mockState is a scriptable game.State. Play follows the next table when
// the move is scripted, otherwise it returns a copy with the move recorded
// and the turn flipped, which makes an endless game by default.
type mockState struct {
	player   game.Player
	moves    []game.Move
	winner   game.Player
	terminal bool
	played   []game.Move
	next     map[game.Move]game.State
}

func (m mockState) Player() game.Player {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	if m.terminal {
		return nil
	}
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	if successor, ok := m.next[move]; ok {
		return successor
	}
	copied := m
	copied.played = append(append([]game.Move{}, m.played...), move)
	copied.player = m.player.Opponent()
	return copied
}

func (m mockState) IsTerminal() bool {
	return m.terminal
}

func (m mockState) Winner() game.Player {
	return m.winner
}

func (m mockState) Hash() game.StateHash {
	return 0
}
