package searcher

import (
	"fmt"

	"connectfour/game"
)

// playedMove is one move of a simulation paired with the player who made
// it. Backpropagation needs the pairing to credit the right AMAF table.
type playedMove struct {
	player game.Player
	move   game.Move
}

// rollout plays uniformly random moves from state until the game ends and
// returns the winner together with the move sequence. A state that exhausts
// its legal moves without a terminal verdict scores as a draw. Exceeding
// the playout cap means the state implementation cannot terminate; that is
// fatal for the search rather than silently scored.
func (m *MCTS) rollout(state game.State) (game.Player, []playedMove, error) {
	var played []playedMove
	for depth := 0; !state.IsTerminal(); depth++ {
		if depth >= m.playoutCap {
			return game.Nobody, nil, fmt.Errorf("%w: %d moves played", ErrRolloutNonTermination, depth)
		}

		moves := state.LegalMoves()
		if len(moves) == 0 {
			return game.Nobody, played, nil
		}

		move := moves[m.rng.Intn(len(moves))] // Random rollout policy
		played = append(played, playedMove{player: state.Player(), move: move})
		state = state.Play(move)
	}

	m.metrics.AddFullPlayout()
	return state.Winner(), played, nil
}
