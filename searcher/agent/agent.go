package agent

import (
	"gomoku/experiments/metrics"
	"gomoku/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Agent interface {
	// FindMove returns the move to play on b and the metrics of the search
	// that produced it. It returns game.NoMove only when b has no empty cell.
	FindMove(b *game.Board) (game.Move, metrics.SearchMetric)
}

// Config identifies the acting side and the game it plays.
type Config struct {
	Player     game.Player
	BoardSize  int
	RunLength  int
	Depth      int
	Goroutines int
	Seed       uint64        // 0 draws a random seed
	Evaluate   game.Evaluate // nil selects game.EvaluateAnchored
}

func (c Config) validate() {
	if c.Player != game.Black && c.Player != game.White {
		panic("agent player must be black or white")
	}
	if c.BoardSize <= 0 || c.RunLength <= 0 {
		panic("agent board size and run length must be positive")
	}
	if c.Depth < 0 {
		panic("agent depth must not be negative")
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = frand.Uint64n(1<<63) + 1
	}
	return rand.New(rand.NewSource(seed))
}

// randomEmpty picks an empty cell uniformly at random.
func randomEmpty(rng *rand.Rand, b *game.Board) game.Move {
	moves := b.EmptyCells()
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[rng.Intn(len(moves))]
}

func checkSize(c Config, b *game.Board) {
	if b.Size() != c.BoardSize {
		log.Warn().
			Int("configured", c.BoardSize).
			Int("board", b.Size()).
			Msg("agent board size mismatch")
	}
}
