package experiments

import (
	"fmt"
	"time"

	"gomoku/engine"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames  = 20 // Per match up
	BoardSize = 7
	RunLength = 4
)

// Experiment plays every matchup NumGames times, alternating which agent
// moves first, and stores the results under OutDir.
type Experiment struct {
	Name      string
	BoardSize int
	RunLength int
	NumGames  int
	Parallel  int    // Games played at once, at least 1
	OutDir    string // "" skips writing results
	Seed      uint64 // 0 seeds agents randomly
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// RunDepthExperiment pits deeper searchers against the one-ply baseline.
func RunDepthExperiment(outDir string) (Result, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: 1, Goroutines: 1, Evaluator: "runs"}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 2, Goroutines: 4, Evaluator: "runs"},
		{ID: 2, Kind: "minimax", Depth: 3, Goroutines: 4, Evaluator: "runs"},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	x := Experiment{Name: "depth", BoardSize: BoardSize, RunLength: RunLength, NumGames: NumGames, Parallel: 4, OutDir: outDir}
	return x.Run(append(configs, baseline), matchUps)
}

// RunBaselineExperiment pits each evaluator against random play.
func RunBaselineExperiment(outDir string) (Result, error) {
	random := metrics.AgentConfig{ID: 0, Kind: "random"}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 1, Goroutines: 1, Evaluator: "anchored"},
		{ID: 2, Kind: "minimax", Depth: 2, Goroutines: 1, Evaluator: "runs"},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{random, config})
	}

	x := Experiment{Name: "baseline", BoardSize: BoardSize, RunLength: RunLength, NumGames: NumGames, Parallel: 4, OutDir: outDir}
	return x.Run(append(configs, random), matchUps)
}

func (x Experiment) Run(configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Result, error) {
	if x.BoardSize <= 0 || x.RunLength <= 0 || x.NumGames <= 0 {
		return Result{}, fmt.Errorf("experiment %q: board size, run length and games must be positive", x.Name)
	}
	for _, matchup := range matchUps {
		if len(matchup) != 2 {
			return Result{}, fmt.Errorf("experiment %q: matchup needs two agents, got %d", x.Name, len(matchup))
		}
	}

	start := time.Now()
	log.Info().Msgf("starting %s experiment...", x.Name)

	total := len(matchUps) * x.NumGames
	gameRecords := make([]metrics.GameRecord, total)
	moveRecords := make([][]metrics.MoveRecord, total)

	var g errgroup.Group
	g.SetLimit(max(x.Parallel, 1))
	for mi, matchup := range matchUps {
		for i := 0; i < x.NumGames; i++ {
			id := mi*x.NumGames + i + 1
			g.Go(func() error {
				record, moves, err := x.runGame(id, matchup[0], matchup[1], i%2 == 1)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				gameRecords[id-1] = record
				moveRecords[id-1] = moves
				log.Info().Msgf("completed matchup %d of %d game %d of %d, winner: %q", mi+1, len(matchUps), i+1, x.NumGames, record.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Games: gameRecords}
	for _, moves := range moveRecords {
		result.Moves = append(result.Moves, moves...)
	}
	log.Info().Msgf("completed %s experiment", x.Name)

	if x.OutDir == "" {
		return result, nil
	}
	end := time.Now()
	if err := x.store(configs, matchUps, result, start, end); err != nil {
		return result, err
	}
	return result, nil
}

// runGame plays agent1 against agent2; swapped gives agent2 the first move.
func (x Experiment) runGame(id int, config1, config2 metrics.AgentConfig, swapped bool) (metrics.GameRecord, []metrics.MoveRecord, error) {
	blackConfig, whiteConfig := config1, config2
	if swapped {
		blackConfig, whiteConfig = config2, config1
	}

	black, err := x.createAgent(blackConfig, game.Black, id)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	white, err := x.createAgent(whiteConfig, game.White, id)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.LocalEngine(x.BoardSize, game.NewStandardRules(x.RunLength), black, white)
	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:         id,
		Agent1:     config1.ID,
		Agent2:     config2.ID,
		BlackAgent: blackConfig.ID,
		GameMetric: gameMetric,
	}
	switch gameMetric.Winner {
	case game.Black.String():
		record.WinnerAgent = blackConfig.ID
	case game.White.String():
		record.WinnerAgent = whiteConfig.ID
	}

	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: mm}
	}
	return record, moves, nil
}

func (x Experiment) createAgent(config metrics.AgentConfig, player game.Player, gameID int) (agent.Agent, error) {
	evaluate, err := game.LookupEvaluator(config.Evaluator)
	if err != nil {
		return nil, err
	}
	var seed uint64
	if x.Seed != 0 {
		seed = x.Seed + uint64(gameID)*2
		if player == game.White {
			seed++
		}
	}

	agentConfig := agent.Config{
		Player:     player,
		BoardSize:  x.BoardSize,
		RunLength:  x.RunLength,
		Depth:      config.Depth,
		Goroutines: config.Goroutines,
		Seed:       seed,
		Evaluate:   evaluate,
	}
	switch config.Kind {
	case "minimax", "":
		return agent.NewMinimaxAgent(agentConfig), nil
	case "random":
		return agent.NewRandomAgent(agentConfig), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func (x Experiment) store(configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, result Result, start, end time.Time) error {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(metrics.Setup{
		Name:      x.Name,
		BoardSize: x.BoardSize,
		RunLength: x.RunLength,
		NumGames:  x.NumGames,
		Matchups:  matchUps,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}
