package searcher

import "math"

// valuePolicy computes a selection score for child under parent. Higher is
// better from the perspective of the player choosing at parent. All four
// variants share this one function-shaped contract.
type valuePolicy func(m *MCTS, parent, child *node) float64

func policyFor(variant Variant) valuePolicy {
	switch variant {
	case UCT:
		return uctScore
	case RAVE:
		return raveScore
	case GRAVE:
		return graveScore
	case AMAF:
		return amafScore
	}
	return nil
}

// uctScore is the classic UCB1 applied to trees:
// Q/N + C*sqrt(ln(Nparent)/N). Unvisited children score +Inf so they are
// explored before any exploitation happens.
func uctScore(m *MCTS, parent, child *node) float64 {
	if child.visits == 0 {
		return math.Inf(1)
	}
	n := float64(child.visits)
	return child.rewards/n + m.exploration*math.Sqrt(math.Log(float64(parent.visits))/n)
}

// raveScore blends UCT with the parent's AMAF statistic for the child's
// move: (1-beta)*UCT + beta*AMAF, beta = sqrt(k/(3*Nparent+k)). As the
// parent accumulates visits beta decays to zero and the blend degenerates
// to plain UCT. A move without AMAF visits falls back to UCT alone.
func raveScore(m *MCTS, parent, child *node) float64 {
	return blendScore(m, parent, parent, child)
}

// graveScore is the RAVE blend, except the AMAF table is borrowed from the
// nearest ancestor of parent (parent included) whose visit count exceeds
// the reference threshold. Deep nodes with sparse tables lean on a
// better-visited ancestor; the root always qualifies as the fallback.
func graveScore(m *MCTS, parent, child *node) float64 {
	ref := parent
	for ref.parent != nil && ref.visits <= m.graveThreshold {
		ref = ref.parent
	}
	return blendScore(m, parent, ref, child)
}

func blendScore(m *MCTS, parent, ref, child *node) float64 {
	uct := uctScore(m, parent, child)
	if math.IsInf(uct, 1) {
		return uct
	}

	amafVisits, amafRewards := ref.amafLookup(child.player, child.move)
	if amafVisits == 0 {
		return uct
	}

	k := m.raveEquivalence
	beta := math.Sqrt(k / (3*float64(parent.visits) + k))
	return (1-beta)*uct + beta*(amafRewards/float64(amafVisits))
}

// amafScore ranks children purely by their AMAF mean, ignoring the UCT term
// entirely. Moves without AMAF visits score +Inf, mirroring UCT's treatment
// of unvisited children.
func amafScore(m *MCTS, parent, child *node) float64 {
	if child.visits == 0 {
		return math.Inf(1)
	}
	amafVisits, amafRewards := parent.amafLookup(child.player, child.move)
	if amafVisits == 0 {
		return math.Inf(1)
	}
	return amafRewards / float64(amafVisits)
}
