package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"connectfour/game"
)

type Option func(m *MCTS)

// MCTS runs a budgeted Monte Carlo tree search over a game.State. One
// FindMove call builds a fresh tree, runs Select/Expand/Rollout/Backup
// cycles until the budget is exhausted, and returns the most-visited root
// move. A search runs sequentially on the calling goroutine and owns its
// tree exclusively; callers needing responsiveness offload the call.
type MCTS struct {
	variant         Variant
	episodes        int
	duration        time.Duration
	exploration     float64
	raveEquivalence float64
	graveThreshold  int
	playoutCap      int
	seed            uint64
	seeded          bool
	rng             *rand.Rand
	policy          valuePolicy
	metrics         MetricsCollector
	lastMetrics     SearchMetrics
	root            *node
}

// WithEpisodes bounds the search by simulation count.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		m.episodes = episodes
	}
}

// WithDuration bounds the search by wall clock. Combined with WithEpisodes,
// whichever budget triggers first ends the search.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		m.duration = duration
	}
}

// WithExploration sets the UCT exploration constant C.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

// WithRaveEquivalence sets the RAVE equivalence parameter k used by the
// RAVE and GRAVE blends.
func WithRaveEquivalence(k float64) Option {
	return func(m *MCTS) {
		m.raveEquivalence = k
	}
}

// WithGraveThreshold sets the visit count a node must exceed for its AMAF
// table to serve as a GRAVE reference.
func WithGraveThreshold(visits int) Option {
	return func(m *MCTS) {
		m.graveThreshold = visits
	}
}

// WithPlayoutCap bounds a single rollout's length before it is declared
// non-terminating.
func WithPlayoutCap(moves int) Option {
	return func(m *MCTS) {
		m.playoutCap = moves
	}
}

// WithSeed fixes the random source, making searches reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

// WithMetrics attaches a collector whose result is retrievable through
// Metrics after each search.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(variant Variant, options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		variant:         variant,
		exploration:     DefaultExploration,
		raveEquivalence: DefaultRaveEquivalence,
		graveThreshold:  DefaultGraveThreshold,
		playoutCap:      DefaultPlayoutCap,
		metrics:         NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	if !m.seeded {
		m.seed = uint64(time.Now().UnixNano())
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	m.policy = policyFor(m.variant)
	return m, nil
}

func (m *MCTS) validate() error {
	if policyFor(m.variant) == nil {
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, m.variant)
	}
	if m.episodes < 0 {
		return fmt.Errorf("%w: episodes must be positive, got %d", ErrInvalidConfig, m.episodes)
	}
	if m.duration < 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidConfig, m.duration)
	}
	if m.episodes == 0 && m.duration == 0 {
		return fmt.Errorf("%w: an episode or duration budget is required", ErrInvalidConfig)
	}
	if m.exploration < 0 {
		return fmt.Errorf("%w: exploration constant must be non-negative, got %g", ErrInvalidConfig, m.exploration)
	}
	if m.raveEquivalence < 0 {
		return fmt.Errorf("%w: RAVE equivalence must be non-negative, got %g", ErrInvalidConfig, m.raveEquivalence)
	}
	if m.graveThreshold < 0 {
		return fmt.Errorf("%w: GRAVE threshold must be non-negative, got %d", ErrInvalidConfig, m.graveThreshold)
	}
	if m.playoutCap <= 0 {
		return fmt.Errorf("%w: playout cap must be positive, got %d", ErrInvalidConfig, m.playoutCap)
	}
	return nil
}

// Variant returns the value policy this searcher was built with.
func (m *MCTS) Variant() Variant {
	return m.variant
}

// Metrics returns the metrics of the last completed FindMove.
func (m *MCTS) Metrics() SearchMetrics {
	return m.lastMetrics
}

// FindMove searches from state under the configured budget and returns the
// most-visited root move, visit ties broken uniformly at random.
func (m *MCTS) FindMove(state game.State) (game.Move, error) {
	if len(state.LegalMoves()) == 0 {
		return 0, fmt.Errorf("%w: position is terminal or the board is full", ErrNoLegalMoves)
	}

	m.root = newNode(nil, 0, state)
	m.metrics.Start()

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}

	// A started iteration always runs to completion; the budget is only
	// re-checked at iteration boundaries.
	episodes := 0
	for {
		if m.episodes > 0 && episodes >= m.episodes {
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
		if err := m.simulate(state); err != nil {
			return 0, err
		}
		episodes++
		m.metrics.AddEpisode()
	}
	m.lastMetrics = m.metrics.Complete()

	move := m.root.bestMove(m.rng)
	log.Debug().
		Stringer("variant", m.variant).
		Int("episodes", episodes).
		Int("column", int(move)).
		Msg("search complete")
	return move, nil
}

// simulate runs one Select/Expand/Rollout/Backup cycle.
func (m *MCTS) simulate(state game.State) error {
	leaf, leafState := m.selectThenExpand(state)
	winner, played, err := m.rollout(leafState)
	if err != nil {
		return err
	}
	backup(leaf, winner, played, m.variant != UCT)
	return nil
}

// selectThenExpand walks the tree by the active value policy until it
// expands a node or hits a terminal one.
func (m *MCTS) selectThenExpand(state game.State) (*node, game.State) {
	parent := m.root
	child, childState, selected := parent.selectOrExpand(state, m)
	for selected {
		parent = child
		state = childState
		child, childState, selected = parent.selectOrExpand(state, m)
	}
	return child, childState
}
