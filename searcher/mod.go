package searcher

import (
	"math"

	"connectfour/game"
)

// Variant selects how a child's value is estimated during selection.
type Variant int

const (
	UCT Variant = iota
	RAVE
	GRAVE
	AMAF
)

func (v Variant) String() string {
	switch v {
	case UCT:
		return "UCT"
	case RAVE:
		return "RAVE"
	case GRAVE:
		return "GRAVE"
	case AMAF:
		return "AMAF"
	}
	return "Unknown"
}

const (
	Win  = 1.0  // Reward for a winning outcome
	Loss = -Win // Reward for a losing outcome (negated from opponent perspective)
	Draw = 0.0
)

// Defaults for the tunable search parameters.
var DefaultExploration = math.Sqrt2

const (
	DefaultRaveEquivalence = 300.0
	DefaultGraveThreshold  = 25
	DefaultPlayoutCap      = 512
)

// reward scores a finished playout from player's perspective.
func reward(player, winner game.Player) float64 {
	switch winner {
	case player:
		return Win
	case game.Nobody:
		return Draw
	}
	return Loss
}
