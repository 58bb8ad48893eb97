package searcher

import "errors"

var (
	// ErrInvalidConfig signals a malformed budget or an out-of-range
	// search parameter. The search never starts.
	ErrInvalidConfig = errors.New("invalid search configuration")

	// ErrNoLegalMoves signals that the root position offers no move to
	// choose from. No tree is built.
	ErrNoLegalMoves = errors.New("no legal moves at the root")

	// ErrRolloutNonTermination signals a playout that failed to reach a
	// terminal state within the playout cap. The iteration's result is
	// discarded rather than fabricated.
	ErrRolloutNonTermination = errors.New("rollout did not terminate within the playout cap")
)
