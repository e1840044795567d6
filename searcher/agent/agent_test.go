package agent

import (
	"testing"

	"gomoku/game"

	"github.com/stretchr/testify/require"
)

func testConfig(player game.Player) Config {
	return Config{
		Player:    player,
		BoardSize: 3,
		RunLength: 3,
		Depth:     1,
		Seed:      11,
	}
}

func boardOf(t *testing.T, rows [][]int) *game.Board {
	t.Helper()
	b, err := game.FromRows(rows)
	require.NoError(t, err)
	return b
}

func TestMinimaxAgentFindMove(t *testing.T) {
	t.Run("plays the searched move on an empty board", func(t *testing.T) {
		a := NewMinimaxAgent(testConfig(game.Black))
		b := game.NewBoard(3)

		move, metric := a.FindMove(b)

		require.Equal(t, game.NewMove(0, 0), move)
		require.False(t, metric.Fallback, "Search found a legal move")
		require.Equal(t, 1, metric.Depth)
		require.Positive(t, metric.Nodes)
		require.True(t, b.Equal(game.NewBoard(3)), "Agent should leave the board untouched")
	})

	t.Run("falls back to a random empty cell when search has no move", func(t *testing.T) {
		config := testConfig(game.White)
		config.Depth = 0
		a := NewMinimaxAgent(config)
		b := boardOf(t, [][]int{
			{1, -1, 1},
			{1, 0, -1},
			{-1, 1, 0},
		})

		for i := 0; i < 20; i++ {
			move, metric := a.FindMove(b)

			require.True(t, metric.Fallback)
			require.True(t, b.IsEmpty(move.Row, move.Col), "Fallback %s should be an empty cell", move)
		}
	})

	t.Run("falls back on a board that is already won", func(t *testing.T) {
		config := testConfig(game.White)
		config.Evaluate = game.CountRuns
		a := NewMinimaxAgent(config)
		b := boardOf(t, [][]int{
			{1, 1, 1},
			{-1, -1, 0},
			{0, 0, 0},
		})

		move, metric := a.FindMove(b)

		require.True(t, metric.Fallback, "Terminal root yields no searched move")
		require.True(t, b.IsEmpty(move.Row, move.Col))
	})

	t.Run("returns no move on a full board", func(t *testing.T) {
		a := NewMinimaxAgent(testConfig(game.Black))
		b := boardOf(t, [][]int{
			{1, -1, 1},
			{1, -1, -1},
			{-1, 1, 1},
		})

		move, _ := a.FindMove(b)

		require.True(t, move.IsNone())
	})

	t.Run("parallel root agrees with sequential", func(t *testing.T) {
		config := testConfig(game.White)
		config.Goroutines = 4
		b := boardOf(t, [][]int{
			{1, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		})

		move, metric := NewMinimaxAgent(config).FindMove(b)

		require.Equal(t, game.NewMove(0, 1), move)
		require.Equal(t, 4, metric.Goroutines)
	})

	t.Run("panics on invalid config", func(t *testing.T) {
		require.Panics(t, func() { NewMinimaxAgent(Config{Player: game.Black, RunLength: 3}) })
		require.Panics(t, func() { NewMinimaxAgent(Config{BoardSize: 3, RunLength: 3}) })
	})
}

func TestRandomAgentFindMove(t *testing.T) {
	t.Run("covers every empty cell", func(t *testing.T) {
		a := NewRandomAgent(testConfig(game.Black))
		b := boardOf(t, [][]int{
			{1, 0, -1},
			{0, 1, 0},
			{-1, 0, 1},
		})

		seen := map[game.Move]bool{}
		for i := 0; i < 200; i++ {
			move, metric := a.FindMove(b)
			require.True(t, b.IsEmpty(move.Row, move.Col))
			require.True(t, metric.Fallback)
			seen[move] = true
		}

		require.Len(t, seen, 4, "Uniform sampling should reach all four empty cells")
	})

	t.Run("same seed replays the same moves", func(t *testing.T) {
		b := game.NewBoard(3)
		a1 := NewRandomAgent(testConfig(game.Black))
		a2 := NewRandomAgent(testConfig(game.Black))

		for i := 0; i < 10; i++ {
			m1, _ := a1.FindMove(b)
			m2, _ := a2.FindMove(b)
			require.Equal(t, m1, m2)
		}
	})
}
