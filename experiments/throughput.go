package experiments

import (
	"time"

	"gomoku/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment plays each parallel configuration against itself
// and logs the searched nodes per second. Every configuration searches the
// same trees, so only the speed differs.
func RunThroughputExperiment(outDir string) (Result, error) {
	const numGames = 2 // Per match up
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 3, Goroutines: 1, Evaluator: "runs"},
		{ID: 2, Kind: "minimax", Depth: 3, Goroutines: 2, Evaluator: "runs"},
		{ID: 3, Kind: "minimax", Depth: 3, Goroutines: 4, Evaluator: "runs"},
		{ID: 4, Kind: "minimax", Depth: 3, Goroutines: 8, Evaluator: "runs"},
	}
	// Same config for both players in each game
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	// Games run one at a time so they do not compete for cores
	x := Experiment{Name: "throughput", BoardSize: 5, RunLength: RunLength, NumGames: numGames, Parallel: 1, OutDir: outDir}
	result, err := x.Run(configs, matchUps)
	if err != nil {
		return result, err
	}

	for _, config := range configs {
		nodes, elapsed := throughput(result, config.ID)
		log.Info().
			Int("goroutines", config.Goroutines).
			Int("nodes", nodes).
			Dur("elapsed", elapsed).
			Float64("nodes_per_sec", float64(nodes)/max(elapsed.Seconds(), 1e-9)).
			Msg("throughput")
	}
	return result, nil
}

// throughput sums nodes and search time over every game agent played.
func throughput(result Result, agentID int) (int, time.Duration) {
	games := map[int]bool{}
	for _, g := range result.Games {
		if g.Agent1 == agentID && g.Agent2 == agentID {
			games[g.ID] = true
		}
	}

	nodes := 0
	var elapsed time.Duration
	for _, m := range result.Moves {
		if games[m.Game] {
			nodes += m.Nodes
			elapsed += m.Duration
		}
	}
	return nodes, elapsed
}
