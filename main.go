package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gomoku/engine"
	"gomoku/experiments"
	"gomoku/game"
	"gomoku/meta"
	"gomoku/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode       string
	size       int
	runLength  int
	depth      int
	goroutines int
	evaluator  string
	opponent   string
	seed       uint64
	addr       string
	remote     string
	experiment string
	outDir     string
	logLevel   string
}

func main() {
	cfg := parseFlags()

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", cfg.logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "One of play, experiment, serve")
	flag.IntVar(&cfg.size, "size", meta.DefaultBoardSize, "Board side length")
	flag.IntVar(&cfg.runLength, "run", meta.DefaultRunLength, "Stones in a row needed to win")
	flag.IntVar(&cfg.depth, "depth", meta.DefaultDepth, "Plies searched per move")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.DefaultGoroutines, "Goroutines searching root moves")
	flag.StringVar(&cfg.evaluator, "evaluator", "anchored", "Evaluator: anchored or runs")
	flag.StringVar(&cfg.opponent, "opponent", "minimax", "White agent in play mode: minimax, random or remote")
	flag.Uint64Var(&cfg.seed, "seed", 0, "Seed for random fallback moves, 0 for a random seed")
	flag.StringVar(&cfg.addr, "addr", meta.DefaultAddr, "Listen address in serve mode")
	flag.StringVar(&cfg.remote, "remote", "http://localhost"+meta.DefaultAddr, "Agent server URL for the remote opponent")
	flag.StringVar(&cfg.experiment, "experiment", "baseline", "Experiment: baseline, depth or throughput")
	flag.StringVar(&cfg.outDir, "out", "experiments", "Directory for experiment results")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "zerolog level")
	flag.Parse()
	return cfg
}

func run(cfg config) error {
	switch cfg.mode {
	case "play":
		return runGame(cfg)
	case "experiment":
		return runExperiment(cfg)
	case "serve":
		defaults, err := createConfig(cfg, game.Black)
		if err != nil {
			return err
		}
		return agent.StartAgentServer(cfg.addr, defaults)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

// runGame plays a single game with a minimax agent as black and prints the
// final board.
func runGame(cfg config) error {
	blackConfig, err := createConfig(cfg, game.Black)
	if err != nil {
		return err
	}
	whiteConfig, err := createConfig(cfg, game.White)
	if err != nil {
		return err
	}
	if whiteConfig.Seed != 0 {
		whiteConfig.Seed++
	}

	var white agent.Agent
	switch cfg.opponent {
	case "minimax":
		white = agent.NewMinimaxAgent(whiteConfig)
	case "random":
		white = agent.NewRandomAgent(whiteConfig)
	case "remote":
		white = agent.NewRemoteAgent(whiteConfig, cfg.remote, nil)
	default:
		return fmt.Errorf("unknown opponent %q", cfg.opponent)
	}

	e := engine.LocalEngine(cfg.size, game.NewStandardRules(cfg.runLength), agent.NewMinimaxAgent(blackConfig), white)
	gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Print(e.Master.Board())
	winner := gameMetric.Winner
	if winner == "" {
		winner = "draw"
	}
	fmt.Printf("moves: %d, winner: %s\n", gameMetric.TotalMoves, winner)
	return nil
}

func runExperiment(cfg config) error {
	var err error
	switch cfg.experiment {
	case "baseline":
		_, err = experiments.RunBaselineExperiment(cfg.outDir)
	case "depth":
		_, err = experiments.RunDepthExperiment(cfg.outDir)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(cfg.outDir)
	default:
		err = fmt.Errorf("unknown experiment %q", cfg.experiment)
	}
	return err
}

func createConfig(cfg config, player game.Player) (agent.Config, error) {
	if cfg.size <= 0 || cfg.runLength <= 0 || cfg.depth < 0 {
		return agent.Config{}, fmt.Errorf("size and run length must be positive, depth must not be negative")
	}
	evaluate, err := game.LookupEvaluator(cfg.evaluator)
	if err != nil {
		return agent.Config{}, err
	}
	return agent.Config{
		Player:     player,
		BoardSize:  cfg.size,
		RunLength:  cfg.runLength,
		Depth:      cfg.depth,
		Goroutines: cfg.goroutines,
		Seed:       cfg.seed,
		Evaluate:   evaluate,
	}, nil
}
