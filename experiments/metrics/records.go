package metrics

import (
	"time"

	"connectfour/game"
	"connectfour/searcher"
)

// AgentConfig is the full parameterization of one search agent in an
// experiment. ID ties game and move records back to the config.
type AgentConfig struct {
	ID              int
	Variant         searcher.Variant
	Episodes        int
	Duration        time.Duration
	Exploration     float64
	RaveEquivalence float64
	GraveThreshold  int
}

type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID playing PlayerA
	Agent2   int // AgentConfig.ID playing PlayerB
	Winner   game.Player
	Duration time.Duration
	Moves    int
}

type MoveRecord struct {
	Game         int // GameRecord.ID
	Step         int
	Player       game.Player
	Column       int
	Episodes     int
	FullPlayouts int
	Duration     time.Duration
}

// MatchupSummary aggregates the games of one matchup. WinRate is the first
// agent's share of wins, draws counting half; StdErr is the standard error
// of that mean.
type MatchupSummary struct {
	Agent1  int
	Agent2  int
	Games   int
	Wins1   int
	Wins2   int
	Draws   int
	WinRate float64
	StdErr  float64
}
