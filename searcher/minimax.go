package searcher

import (
	"math"

	"gomoku/experiments/metrics"
	"gomoku/game"

	"github.com/rs/zerolog/log"
)

// Inf bounds every reachable score. -Inf and Inf seed alpha/beta and the
// running best scores.
const Inf = math.MaxInt

type Option func(m *Minimax)

// Decision is the outcome of one move request.
type Decision struct {
	Move    game.Move
	Score   int
	Metrics metrics.SearchMetric
}

// Minimax is a depth-bounded minimax searcher with alpha-beta pruning. Black
// is the maximizing side and White the minimizing side. A Minimax holds only
// configuration, so one value may serve concurrent requests on distinct
// boards.
type Minimax struct {
	goroutines  int
	evaluate    game.Evaluate
	pruning     bool
	withMetrics bool
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithoutPruning turns the search into exhaustive minimax.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// WithGoroutines searches root candidates in parallel, each on its own copy
// of the board.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.withMetrics = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		goroutines: 1,
		evaluate:   game.EvaluateAnchored,
		pruning:    true,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search runs minimax with alpha-beta bounds for player on b and returns the
// chosen move (game.NoMove when no candidate was explored) and its score.
// Every trial placement is undone before Search returns.
func (m *Minimax) Search(b *game.Board, player game.Player, depth, alpha, beta, runLength int) (game.Move, int) {
	s := m.newSearch(runLength, metrics.NewDummyCollector())
	return s.minimax(b, player, depth, alpha, beta)
}

// Decide searches with a full window, in parallel at the root when
// configured with more than one goroutine.
func (m *Minimax) Decide(b *game.Board, player game.Player, depth, runLength int) Decision {
	collector := metrics.NewDummyCollector()
	if m.withMetrics {
		collector = metrics.NewCollector()
	}
	collector.Start(m.goroutines, depth)

	s := m.newSearch(runLength, collector)
	var move game.Move
	var score int
	if m.goroutines > 1 {
		move, score = s.parallelRoot(b, player, depth, m.goroutines)
	} else {
		move, score = s.minimax(b, player, depth, -Inf, Inf)
	}

	log.Debug().
		Str("player", player.String()).
		Int("depth", depth).
		Str("move", move.String()).
		Int("score", score).
		Msg("minimax-decision")

	return Decision{
		Move:    move,
		Score:   score,
		Metrics: collector.Complete(),
	}
}

func (m *Minimax) newSearch(runLength int, collector metrics.Collector) *search {
	return &search{
		evaluate:  m.evaluate,
		pruning:   m.pruning,
		runLength: runLength,
		metrics:   collector,
	}
}
