package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gomoku/experiments/metrics"
	"gomoku/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// remoteAgent requests moves from an agent server. Transport failures and
// illegal answers are replaced by a random empty cell, like a local search
// that came back empty.
type remoteAgent struct {
	config Config
	url    string
	client *http.Client
	rules  game.Rules
	rng    *rand.Rand
}

func NewRemoteAgent(config Config, url string, client *http.Client) Agent {
	config.validate()
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &remoteAgent{
		config: config,
		url:    url,
		client: client,
		rules:  game.NewStandardRules(config.RunLength),
		rng:    newRand(config.Seed),
	}
}

func (a *remoteAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	resp, err := a.requestMove(b)
	metric := metrics.SearchMetric{Depth: a.config.Depth, Duration: time.Since(start)}
	if err != nil {
		log.Warn().Err(err).Str("url", a.url).Msg("remote agent failed, playing random cell")
		metric.Fallback = true
		return randomEmpty(a.rng, b), metric
	}

	metric.Score = resp.Score
	metric.Fallback = resp.Fallback
	move := game.NewMove(resp.Row, resp.Col)
	if !resp.Found || !a.rules.IsLegal(b, move) {
		metric.Fallback = true
		return randomEmpty(a.rng, b), metric
	}
	return move, metric
}

// requestMove posts the board to /findmove and decodes the answer.
func (a *remoteAgent) requestMove(b *game.Board) (*FindMoveResponse, error) {
	depth := a.config.Depth
	body, err := json.Marshal(FindMoveRequest{
		Board:     b.Rows(),
		Player:    a.config.Player.Value(),
		RunLength: a.config.RunLength,
		Depth:     &depth,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to reach agent server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent server returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var move FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return nil, fmt.Errorf("failed to decode move: %w", err)
	}
	return &move, nil
}
