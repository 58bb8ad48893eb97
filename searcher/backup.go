package searcher

import (
	"slices"

	"connectfour/game"
)

// backup propagates a finished playout from the expanded (or terminal) node
// up to the root. Every node on the path gains one visit and the reward
// seen from its own perspective, so the sign alternates as the path crosses
// turn boundaries.
//
// With trackAMAF set, each node v additionally credits, in its per-player
// tables, every move played below v: the path edges underneath it plus the
// whole rollout. That attribution to moves rather than positions is what
// feeds RAVE, GRAVE and AMAF selection.
func backup(leaf *node, winner game.Player, rolloutMoves []playedMove, trackAMAF bool) {
	// Edge moves from the root down to leaf, continued by the rollout.
	var path []playedMove
	for n := leaf; n.parent != nil; n = n.parent {
		path = append(path, playedMove{player: n.player, move: n.move})
	}
	slices.Reverse(path)
	all := append(path, rolloutMoves...)

	// below indexes the first move in all that lies below the current
	// node; the edge into a node sits below its parent, so the index
	// drops by one per level.
	below := len(path)
	for n := leaf; n != nil; n = n.parent {
		n.visits++
		n.rewards += reward(n.player, winner)

		if trackAMAF {
			for _, pm := range all[below:] {
				n.amafAdd(pm.player, pm.move, reward(pm.player, winner))
			}
		}
		below--
	}
}
