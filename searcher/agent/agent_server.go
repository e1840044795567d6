package agent

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gomoku/game"
	"gomoku/meta"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const requestTimeout = 30 * time.Second

type FindMoveRequest struct {
	Board     [][]int `json:"board"`
	Player    int     `json:"player"`
	RunLength int     `json:"run_length,omitempty"`
	Depth     *int    `json:"depth,omitempty"`
}

type FindMoveResponse struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	Found    bool `json:"found"`
	Score    int  `json:"score"`
	Fallback bool `json:"fallback"`
}

type server struct {
	defaults Config
}

// NewServer returns the agent HTTP handler. Requests may override the run
// length and depth; everything else comes from defaults.
func NewServer(defaults Config) http.Handler {
	s := &server{defaults: defaults}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Post("/findmove", s.handleFindMove)
	return r
}

// StartAgentServer serves agent requests on addr until the listener fails.
func StartAgentServer(addr string, defaults Config) error {
	log.Info().Msgf("starting agent server on %s", addr)
	return http.ListenAndServe(addr, NewServer(defaults))
}

func (s *server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, meta.MaxRequestBytes)
	var req FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	config, b, err := s.configFor(req)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	move, metric := NewMinimaxAgent(config).FindMove(b)
	log.Info().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("player", config.Player.String()).
		Str("move", move.String()).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("findmove")

	resp := FindMoveResponse{
		Row:      move.Row,
		Col:      move.Col,
		Found:    !move.IsNone(),
		Score:    metric.Score,
		Fallback: metric.Fallback,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *server) configFor(req FindMoveRequest) (Config, *game.Board, error) {
	if len(req.Board) > meta.MaxBoardSize {
		return Config{}, nil, fmt.Errorf("board size %d exceeds %d", len(req.Board), meta.MaxBoardSize)
	}
	b, err := game.FromRows(req.Board)
	if err != nil {
		return Config{}, nil, err
	}
	player, err := game.ParsePlayer(req.Player)
	if err != nil {
		return Config{}, nil, err
	}

	config := s.defaults
	config.Player = player
	config.BoardSize = b.Size()
	config.Seed = 0
	if req.RunLength > 0 {
		config.RunLength = req.RunLength
	}
	if req.Depth != nil {
		if *req.Depth < 0 {
			return Config{}, nil, fmt.Errorf("depth %d must not be negative", *req.Depth)
		}
		if *req.Depth > meta.MaxDepth {
			return Config{}, nil, fmt.Errorf("depth %d exceeds %d", *req.Depth, meta.MaxDepth)
		}
		config.Depth = *req.Depth
	}
	if config.RunLength <= 0 {
		return Config{}, nil, fmt.Errorf("run length %d must be positive", config.RunLength)
	}
	return config, b, nil
}
