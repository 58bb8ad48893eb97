package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"connectfour/game"
	"connectfour/searcher"
)

// Agent is anything that can pick a move for the position it is handed.
type Agent interface {
	FindMove(state game.State) (game.Move, error)
}

// MoveRecord captures one move of a finished game, including the search
// metrics of the agent that produced it when available.
type MoveRecord struct {
	Step   int
	Player game.Player
	Move   game.Move
	Search searcher.SearchMetrics
}

// Engine drives a local game between two agents until it ends.
type Engine struct {
	State  game.State
	Agents map[game.Player]Agent
}

func LocalEngine(agentA, agentB Agent) *Engine {
	return &Engine{
		State: game.NewGameState(),
		Agents: map[game.Player]Agent{
			game.PlayerA: agentA,
			game.PlayerB: agentB,
		},
	}
}

// Run executes the entire game loop until the game is decided or drawn.
func (e *Engine) Run() (game.Player, []MoveRecord, error) {
	log.Info().Stringer("player", e.State.Player()).Msg("game starting")

	var records []MoveRecord
	step := 1
	for !e.State.IsTerminal() {
		mover := e.State.Player()
		agent := e.Agents[mover]

		move, err := agent.FindMove(e.State)
		if err != nil {
			return game.Nobody, records, fmt.Errorf("%s failed to move: %w", mover, err)
		}

		record := MoveRecord{Step: step, Player: mover, Move: move}
		if m, ok := agent.(interface{ Metrics() searcher.SearchMetrics }); ok {
			record.Search = m.Metrics()
		}
		records = append(records, record)

		e.State = e.State.Play(move)
		log.Debug().
			Int("step", step).
			Stringer("player", mover).
			Int("column", int(move)).
			Uint64("hash", uint64(e.State.Hash())).
			Msg("move played")
		step++
	}

	winner := e.State.Winner()
	log.Info().Stringer("winner", winner).Int("moves", step-1).Msg("game over")
	return winner, records, nil
}
