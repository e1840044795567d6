package agent

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// minimaxAgent asks the searcher for a move and falls back to a random empty
// cell when the searcher has none or proposes an illegal one. An agent is not
// safe for concurrent use.
type minimaxAgent struct {
	config  Config
	rules   game.Rules
	minimax *searcher.Minimax
	rng     *rand.Rand
}

// NewMinimaxAgent returns an agent searching config.Depth plies per move.
func NewMinimaxAgent(config Config) Agent {
	config.validate()

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(config.Evaluate))
	}

	return &minimaxAgent{
		config:  config,
		rules:   game.NewStandardRules(config.RunLength),
		minimax: searcher.NewMinimax(options...),
		rng:     newRand(config.Seed),
	}
}

func (a *minimaxAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric) {
	checkSize(a.config, b)

	decision := a.minimax.Decide(b, a.config.Player, a.config.Depth, a.rules.RunLength())
	metric := decision.Metrics
	metric.Score = decision.Score

	if decision.Move.IsNone() || !a.rules.IsLegal(b, decision.Move) {
		metric.Fallback = true
		move := randomEmpty(a.rng, b)
		log.Debug().
			Str("player", a.config.Player.String()).
			Str("proposed", decision.Move.String()).
			Str("fallback", move.String()).
			Msg("search gave no legal move, playing random cell")
		return move, metric
	}

	return decision.Move, metric
}
