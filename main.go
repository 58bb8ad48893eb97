package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connectfour/experiments"
	"connectfour/game"
	"connectfour/searcher"
)

var profile = termenv.ColorProfile()

func main() {
	experiment := flag.Bool("experiment", false, "run the variant comparison experiment instead of an interactive game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if *experiment {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if err := experiments.RunVariantComparison(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	mcts, err := searcher.NewMCTS(searcher.GRAVE,
		searcher.WithDuration(2*time.Second),
		searcher.WithMetrics(),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build searcher")
	}

	fmt.Printf("Connect 4 — you are %s, the engine (%s) is %s.\n",
		disc(game.PlayerA), mcts.Variant(), disc(game.PlayerB))

	var state game.State = game.NewGameState()
	scanner := bufio.NewScanner(os.Stdin)

	for !state.IsTerminal() {
		render(state)

		var move game.Move
		if state.Player() == game.PlayerA {
			move = readMove(scanner, state)
		} else {
			fmt.Println("Engine is thinking...")
			move, err = mcts.FindMove(state)
			if err != nil {
				log.Fatal().Err(err).Msg("search failed")
			}
			metric := mcts.Metrics()
			fmt.Printf("Engine plays column %d (%d simulations in %s)\n",
				move+1, metric.Episodes, metric.Duration.Round(time.Millisecond))
		}
		state = state.Play(move)
	}

	render(state)
	switch state.Winner() {
	case game.PlayerA:
		fmt.Println("You win!")
	case game.PlayerB:
		fmt.Println("The engine wins.")
	default:
		fmt.Println("It's a draw.")
	}
}

func readMove(scanner *bufio.Scanner, state game.State) game.Move {
	legal := map[game.Move]bool{}
	for _, move := range state.LegalMoves() {
		legal[move] = true
	}

	for {
		fmt.Printf("Your move (column 1-%d): ", game.Columns)
		if !scanner.Scan() {
			fmt.Println()
			os.Exit(0)
		}
		column, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || column < 1 || column > game.Columns {
			fmt.Println("Please enter a column number.")
			continue
		}
		move := game.Move(column - 1)
		if !legal[move] {
			fmt.Println("That column is full.")
			continue
		}
		return move
	}
}

func render(state game.State) {
	board := state.(game.GameState).Board()

	fmt.Println()
	for row := game.Rows - 1; row >= 0; row-- {
		fmt.Print("|")
		for col := 0; col < game.Columns; col++ {
			fmt.Printf(" %s", disc(board.Cell(row, col)))
		}
		fmt.Println(" |")
	}
	fmt.Print("+")
	for col := 1; col <= game.Columns; col++ {
		fmt.Printf(" %d", col)
	}
	fmt.Println(" +")
}

func disc(p game.Player) string {
	switch p {
	case game.PlayerA:
		return termenv.String("●").Foreground(profile.Color("9")).String() // red
	case game.PlayerB:
		return termenv.String("●").Foreground(profile.Color("11")).String() // yellow
	}
	return "·"
}
