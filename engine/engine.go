package engine

import "gomoku/experiments/metrics"

type Engine interface {
	// Run plays a game until a side completes a run or the board is full
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
