package agent

import (
	"time"

	"gomoku/experiments/metrics"
	"gomoku/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	config Config
	rng    *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random empty
// cells.
func NewRandomAgent(config Config) Agent {
	config.validate()
	return &randomAgent{config: config, rng: newRand(config.Seed)}
}

func (a *randomAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric) {
	checkSize(a.config, b)

	start := time.Now()
	move := randomEmpty(a.rng, b)
	return move, metrics.SearchMetric{Duration: time.Since(start), Fallback: true}
}
