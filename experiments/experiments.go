package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
)

const (
	NumGames      = 40 // Per matchup, half with each agent starting
	EpisodeBudget = 500
	OutputRoot    = "results"
)

// RunVariantComparison pits baseline UCT against each AMAF-family variant
// under the same simulation budget and writes records plus per-matchup
// win-rate summaries as CSV.
func RunVariantComparison() error {
	configs := []metrics.AgentConfig{
		{ID: 0, Variant: searcher.UCT, Episodes: EpisodeBudget, Exploration: searcher.DefaultExploration},
		{ID: 1, Variant: searcher.RAVE, Episodes: EpisodeBudget, Exploration: searcher.DefaultExploration,
			RaveEquivalence: searcher.DefaultRaveEquivalence},
		{ID: 2, Variant: searcher.GRAVE, Episodes: EpisodeBudget, Exploration: searcher.DefaultExploration,
			RaveEquivalence: searcher.DefaultRaveEquivalence, GraveThreshold: searcher.DefaultGraveThreshold},
		{ID: 3, Variant: searcher.AMAF, Episodes: EpisodeBudget},
	}

	baseline := configs[0]
	matchups := [][2]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchups = append(matchups, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("variant_comparison", configs, matchups)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchups [][2]metrics.AgentConfig) error {
	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := []metrics.MatchupSummary{}

	for mi, matchup := range matchups {
		log.Info().Msgf("starting matchup %d of %d between agent%d and agent%d...",
			mi+1, len(matchups), matchup[0].ID, matchup[1].ID)

		// outcomes holds the first agent's score per game: 1 win, 0.5 draw
		outcomes := make([]float64, 0, NumGames)
		wins1, wins2, draws := 0, 0, 0

		for i := 0; i < NumGames; i++ {
			// Alternate the starting agent to cancel out the
			// first-move advantage
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			winner, gameRecord, gameMoves, err := runGame(first, second)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecord.ID = count
			gameRecords = append(gameRecords, gameRecord)
			for _, mr := range gameMoves {
				mr.Game = count
				moveRecords = append(moveRecords, mr)
			}

			switch {
			case winner == game.Nobody:
				draws++
				outcomes = append(outcomes, 0.5)
			case (winner == game.PlayerA) == (first.ID == matchup[0].ID):
				wins1++
				outcomes = append(outcomes, 1)
			default:
				wins2++
				outcomes = append(outcomes, 0)
			}

			log.Info().Msgf("completed matchup %d game %d of %d with winner: %s",
				mi+1, i+1, NumGames, winner)
		}

		mean := stat.Mean(outcomes, nil)
		stderr := stat.StdErr(stat.StdDev(outcomes, nil), float64(len(outcomes)))
		summaries = append(summaries, metrics.MatchupSummary{
			Agent1:  matchup[0].ID,
			Agent2:  matchup[1].ID,
			Games:   NumGames,
			Wins1:   wins1,
			Wins2:   wins2,
			Draws:   draws,
			WinRate: mean,
			StdErr:  stderr,
		})
		log.Info().Msgf("completed matchup %d of %d: win rate %.3f±%.3f",
			mi+1, len(matchups), mean, stderr)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(OutputRoot, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return fmt.Errorf("failed to store matchup summaries: %w", err)
	}
	log.Info().Msgf("stored experiment results under %s", writer.Dir())

	return nil
}

// runGame executes a single game, first playing PlayerA, and returns the
// winner with its records.
func runGame(first, second metrics.AgentConfig) (game.Player, metrics.GameRecord, []metrics.MoveRecord, error) {
	agent1, err := createMCTS(first)
	if err != nil {
		return game.Nobody, metrics.GameRecord{}, nil, err
	}
	agent2, err := createMCTS(second)
	if err != nil {
		return game.Nobody, metrics.GameRecord{}, nil, err
	}

	e := engine.LocalEngine(agent1, agent2)
	start := time.Now()
	winner, moves, err := e.Run()
	if err != nil {
		return game.Nobody, metrics.GameRecord{}, nil, err
	}

	gameRecord := metrics.GameRecord{
		Agent1:   first.ID,
		Agent2:   second.ID,
		Winner:   winner,
		Duration: time.Since(start),
		Moves:    len(moves),
	}
	moveRecords := make([]metrics.MoveRecord, len(moves))
	for i, move := range moves {
		moveRecords[i] = metrics.MoveRecord{
			Step:         move.Step,
			Player:       move.Player,
			Column:       int(move.Move),
			Episodes:     move.Search.Episodes,
			FullPlayouts: move.Search.FullPlayouts,
			Duration:     move.Search.Duration,
		}
	}
	return winner, gameRecord, moveRecords, nil
}

func createMCTS(config metrics.AgentConfig) (*searcher.MCTS, error) {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.RaveEquivalence > 0 {
		options = append(options, searcher.WithRaveEquivalence(config.RaveEquivalence))
	}
	if config.GraveThreshold > 0 {
		options = append(options, searcher.WithGraveThreshold(config.GraveThreshold))
	}

	return searcher.NewMCTS(config.Variant, options...)
}
