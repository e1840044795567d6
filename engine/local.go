package engine

import (
	"fmt"
	"time"

	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/gamemaster"
	"gomoku/searcher/agent"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalGame)(nil)

type LocalGame struct {
	Master *gamemaster.LocalEngine
	Agents map[game.Player]agent.Agent
	size   int
	rules  game.Rules
}

// LocalEngine pairs two agents on a fresh size×size board.
func LocalEngine(size int, rules game.Rules, black, white agent.Agent) *LocalGame {
	if black == nil || white == nil {
		panic("need an agent for each side")
	}
	return &LocalGame{
		Master: gamemaster.NewLocalEngine(size, rules),
		Agents: map[game.Player]agent.Agent{
			game.Black: black,
			game.White: white,
		},
		size:  size,
		rules: rules,
	}
}

// Run executes the entire game loop until there is a winner or a draw.
func (e *LocalGame) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	_, getUpdate := e.Master.Init()
	gameMetric := metrics.GameMetric{
		BoardSize: e.size,
		RunLength: e.rules.RunLength(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting %dx%d game, %d in a row", e.size, e.size, e.rules.RunLength())

	for step := 1; !e.Master.IsOver(); step++ {
		player := e.Master.ToMove()
		// Agents search on a copy so the authoritative board is never borrowed
		move, searchMetric := e.Agents[player].FindMove(e.Master.Board())

		if err := e.Master.Play(player, move); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.Value(),
			Row:          move.Row,
			Col:          move.Col,
			SearchMetric: searchMetric,
		})

		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			log.Debug().
				Int("step", u.Step).
				Str("player", u.Player.String()).
				Str("move", u.Move.String()).
				Bool("fallback", searchMetric.Fallback).
				Msg("move applied")
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner, ok := e.Master.Winner(); ok {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, gameMetric.Winner)
	} else {
		log.Info().Msgf("game over after %d moves, draw", gameMetric.TotalMoves)
	}
	return gameMetric, moveMetrics, nil
}
