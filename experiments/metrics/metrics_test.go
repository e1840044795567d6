package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 2)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddLeaf()
				}
				c.AddCutoff()
			}()
		}
		wg.Wait()

		got := c.Complete()
		require.Equal(t, 400, got.Nodes)
		require.Equal(t, 400, got.Leaves)
		require.Equal(t, 4, got.Cutoffs)
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, 2, got.Depth)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 2)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteSetup(Setup{Name: "depth", BoardSize: 5, RunLength: 4, NumGames: 2, StartTime: start}))
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "minimax", Depth: 2, Goroutines: 1, Evaluator: "runs"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Agent1: 1, Agent2: 2, BlackAgent: 2, WinnerAgent: 2,
		GameMetric: GameMetric{Winner: "Black", BoardSize: 5, RunLength: 4, TotalMoves: 9, StartTime: start, EndTime: start, Duration: time.Second},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: 1, Row: 0, Col: 3, SearchMetric: SearchMetric{Depth: 2, Nodes: 10, Fallback: true}},
	}}))

	t.Run("setup", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)

		var got Setup
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, "depth", got.Name)
		require.Equal(t, 4, got.RunLength)
	})

	t.Run("agent configs", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))

		require.Equal(t, [][]string{
			{"id", "kind", "depth", "goroutines", "evaluator"},
			{"1", "minimax", "2", "1", "runs"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))

		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "2", "2", "Black", "5", "4", "9"}, rows[1][:9])
		require.Equal(t, "1s", rows[1][11])
	})

	t.Run("move records", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))

		require.Len(t, rows, 2)
		require.Equal(t, "fallback", rows[0][12])
		require.Equal(t, []string{"1", "1", "1", "0", "3", "2"}, rows[1][:6])
		require.Equal(t, "10", rows[1][8])
		require.Equal(t, "true", rows[1][12])
	})
}
