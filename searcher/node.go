package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"connectfour/game"
)

// amafStats accumulates the all-moves-as-first statistics of one move.
type amafStats struct {
	visits  int
	rewards float64
}

// amafTable maps a move to its AMAF statistics for one player. Each node
// carries two tables, one per player, because the same column can be good
// for one side and bad for the other.
type amafTable map[game.Move]amafStats

// node is one reachable position in the search tree. rewards is stored from
// the perspective of player, the side that made the move leading into the
// node, so a parent picking among children compares like with like.
type node struct {
	parent     *node
	move       game.Move   // move that created this node; meaningless at the root
	player     game.Player // player who made that move
	mover      game.Player // player to move at this position
	unexplored []game.Move
	moves      []game.Move // explored moves, parallel to children
	children   []*node
	rewards    float64
	visits     int
	terminal   bool
	winner     game.Player
	amaf       [2]amafTable
}

func newNode(parent *node, move game.Move, state game.State) *node {
	n := &node{
		parent:     parent,
		move:       move,
		mover:      state.Player(),
		player:     state.Player().Opponent(),
		unexplored: state.LegalMoves(),
		terminal:   state.IsTerminal(),
		winner:     state.Winner(),
	}
	if parent != nil {
		n.player = parent.mover
	}
	return n
}

// selectOrExpand advances one level of the tree walk. It returns the next
// node, its state, and whether the walk should continue: a terminal node or
// a freshly expanded child ends the walk.
func (n *node) selectOrExpand(state game.State, m *MCTS) (*node, game.State, bool) {
	if n.terminal {
		return n, state, false
	}

	if len(n.unexplored) > 0 { // Expandable node
		child, childState := n.expand(state, m.rng)
		return child, childState, false
	}

	// Fully expanded node
	ith := n.pickChild(m)
	return n.children[ith], state.Play(n.moves[ith]), true
}

// expand realizes one untried move, chosen uniformly at random, as a new
// child. It is the only place that allocates nodes.
func (n *node) expand(state game.State, rng *rand.Rand) (*node, game.State) {
	ith := rng.Intn(len(n.unexplored))
	move := n.unexplored[ith]
	last := len(n.unexplored) - 1
	n.unexplored[ith] = n.unexplored[last]
	n.unexplored = n.unexplored[:last]

	childState := state.Play(move)
	child := newNode(n, move, childState)
	n.moves = append(n.moves, move)
	n.children = append(n.children, child)
	return child, childState
}

func (n *node) fullyExpanded() bool {
	return len(n.unexplored) == 0
}

// pickChild returns the index of the child maximizing the active value
// policy. An unvisited child scores +Inf and is taken immediately.
func (n *node) pickChild(m *MCTS) int {
	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := m.policy(m, n, child)
		if math.IsInf(score, 1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// bestMove returns the move of the most-visited child, breaking ties
// uniformly at random. Used only for the final decision, never during
// search.
func (n *node) bestMove(rng *rand.Rand) game.Move {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	var best []int
	maxVisits := -1
	for i, child := range n.children {
		switch {
		case child.visits > maxVisits:
			maxVisits = child.visits
			best = append(best[:0], i)
		case child.visits == maxVisits:
			best = append(best, i)
		}
	}
	return n.moves[best[rng.Intn(len(best))]]
}

// amafAdd records one move occurrence in the node's table for the player
// who made it.
func (n *node) amafAdd(p game.Player, move game.Move, r float64) {
	i := playerIndex(p)
	if n.amaf[i] == nil {
		n.amaf[i] = make(amafTable)
	}
	stats := n.amaf[i][move]
	stats.visits++
	stats.rewards += r
	n.amaf[i][move] = stats
}

// amafLookup returns the AMAF visit count and accumulated reward for the
// given player's move, zero if the move was never seen.
func (n *node) amafLookup(p game.Player, move game.Move) (int, float64) {
	table := n.amaf[playerIndex(p)]
	if table == nil {
		return 0, 0
	}
	stats := table[move]
	return stats.visits, stats.rewards
}

func playerIndex(p game.Player) int {
	if p == game.PlayerB {
		return 1
	}
	return 0
}
