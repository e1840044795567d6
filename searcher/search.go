package searcher

import (
	"gomoku/experiments/metrics"
	"gomoku/game"

	"golang.org/x/sync/errgroup"
)

// search carries the per-call state of one decision.
type search struct {
	evaluate  game.Evaluate
	pruning   bool
	runLength int
	metrics   metrics.Collector
}

func (s *search) minimax(b *game.Board, player game.Player, depth, alpha, beta int) (game.Move, int) {
	s.metrics.AddNode()
	if s.isLeaf(b, depth) {
		s.metrics.AddLeaf()
		return game.NoMove, s.evaluate(b, player, s.runLength)
	}

	bestMove := game.NoMove
	bestScore := initScore(player)
	size := b.Size()

rows:
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.At(r, c) != game.Empty {
				continue
			}
			move := game.NewMove(r, c)
			score := s.try(b, move, player, depth, alpha, beta)

			if player == game.Black {
				if score > bestScore {
					bestScore, bestMove = score, move
				}
				alpha = max(alpha, score)
			} else {
				if score < bestScore {
					bestScore, bestMove = score, move
				}
				beta = min(beta, score)
			}

			if s.pruning && alpha >= beta {
				s.metrics.AddCutoff()
				break rows
			}
		}
	}
	return bestMove, bestScore
}

// try plays move for player, scores the reply subtree and restores the cell.
func (s *search) try(b *game.Board, move game.Move, player game.Player, depth, alpha, beta int) int {
	undo := b.Place(move, player)
	defer undo()

	_, score := s.minimax(b, player.Opponent(), depth-1, alpha, beta)
	return score
}

// isLeaf stops descent at the depth limit, on a full board, or as soon as the
// evaluator reports anything for either side.
func (s *search) isLeaf(b *game.Board, depth int) bool {
	if depth <= 0 {
		return true
	}
	if s.evaluate(b, game.Black, s.runLength) != 0 || s.evaluate(b, game.White, s.runLength) != 0 {
		return true
	}
	return !b.HasEmpty()
}

// parallelRoot scores every root candidate with a full window on a private
// copy of the board. Reducing in row-major order with strict comparisons
// gives the same move and score as the sequential search.
func (s *search) parallelRoot(b *game.Board, player game.Player, depth, goroutines int) (game.Move, int) {
	s.metrics.AddNode()
	if s.isLeaf(b, depth) {
		s.metrics.AddLeaf()
		return game.NoMove, s.evaluate(b, player, s.runLength)
	}

	candidates := b.EmptyCells()
	scores := make([]int, len(candidates))

	var g errgroup.Group
	g.SetLimit(goroutines)
	for i, move := range candidates {
		g.Go(func() error {
			scores[i] = s.try(b.Clone(), move, player, depth, -Inf, Inf)
			return nil
		})
	}
	_ = g.Wait() // Workers never fail

	bestMove := game.NoMove
	bestScore := initScore(player)
	for i, score := range scores {
		if (player == game.Black && score > bestScore) || (player == game.White && score < bestScore) {
			bestScore, bestMove = score, candidates[i]
		}
	}
	return bestMove, bestScore
}

func initScore(player game.Player) int {
	if player == game.Black {
		return -Inf
	}
	return Inf
}
