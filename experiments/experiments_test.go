package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"gomoku/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestExperimentRun(t *testing.T) {
	minimax := metrics.AgentConfig{ID: 1, Kind: "minimax", Depth: 1, Goroutines: 1, Evaluator: "anchored"}
	random := metrics.AgentConfig{ID: 2, Kind: "random"}

	t.Run("plays and records every game", func(t *testing.T) {
		outDir := t.TempDir()
		x := Experiment{Name: "unit", BoardSize: 4, RunLength: 3, NumGames: 4, Parallel: 2, OutDir: outDir, Seed: 9}

		result, err := x.Run([]metrics.AgentConfig{minimax, random}, [][]metrics.AgentConfig{{minimax, random}})

		require.NoError(t, err)
		require.Len(t, result.Games, 4)
		moves := 0
		for i, g := range result.Games {
			require.Equal(t, i+1, g.ID)
			require.Equal(t, 1, g.Agent1)
			require.Equal(t, 2, g.Agent2)
			if i%2 == 0 {
				require.Equal(t, 1, g.BlackAgent, "Agent1 moves first in even games")
			} else {
				require.Equal(t, 2, g.BlackAgent, "Agent2 moves first in odd games")
			}
			if g.Winner == "" {
				require.Zero(t, g.WinnerAgent)
			}
			moves += g.TotalMoves
		}
		require.Len(t, result.Moves, moves)

		dirs, err := os.ReadDir(filepath.Join(outDir, "unit"))
		require.NoError(t, err)
		require.Len(t, dirs, 1)
		for _, name := range []string{"setup.json", "agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(outDir, "unit", dirs[0].Name(), name))
		}
	})

	t.Run("same seed replays the same games", func(t *testing.T) {
		x := Experiment{Name: "unit", BoardSize: 4, RunLength: 3, NumGames: 2, Parallel: 2, Seed: 9}
		matchUps := [][]metrics.AgentConfig{{random, random}}

		first, err := x.Run(nil, matchUps)
		require.NoError(t, err)
		second, err := x.Run(nil, matchUps)
		require.NoError(t, err)

		require.Equal(t, len(first.Moves), len(second.Moves))
		for i := range first.Moves {
			require.Equal(t, first.Moves[i].Row, second.Moves[i].Row)
			require.Equal(t, first.Moves[i].Col, second.Moves[i].Col)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := Experiment{Name: "bad", BoardSize: 4, RunLength: 3}.Run(nil, nil)
		require.Error(t, err)

		x := Experiment{Name: "bad", BoardSize: 4, RunLength: 3, NumGames: 1}
		_, err = x.Run(nil, [][]metrics.AgentConfig{{minimax}})
		require.Error(t, err)

		unknown := metrics.AgentConfig{ID: 3, Kind: "oracle"}
		_, err = x.Run(nil, [][]metrics.AgentConfig{{minimax, unknown}})
		require.Error(t, err)
	})
}

func TestThroughput(t *testing.T) {
	result := Result{
		Games: []metrics.GameRecord{
			{ID: 1, Agent1: 1, Agent2: 1},
			{ID: 2, Agent1: 2, Agent2: 2},
		},
		Moves: []metrics.MoveRecord{
			{Game: 1, MoveMetric: metrics.MoveMetric{SearchMetric: metrics.SearchMetric{Nodes: 5, Duration: 2}}},
			{Game: 1, MoveMetric: metrics.MoveMetric{SearchMetric: metrics.SearchMetric{Nodes: 7, Duration: 3}}},
			{Game: 2, MoveMetric: metrics.MoveMetric{SearchMetric: metrics.SearchMetric{Nodes: 100, Duration: 9}}},
		},
	}

	nodes, elapsed := throughput(result, 1)

	require.Equal(t, 12, nodes)
	require.EqualValues(t, 5, elapsed)
}
