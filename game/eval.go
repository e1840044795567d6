package game

import "fmt"

// Evaluate scores a board for player given the run length needed to win.
type Evaluate func(b *Board, player Player, runLength int) int

type direction struct {
	dr, dc int
}

// Probe directions: horizontal, vertical, diagonal and anti-diagonal.
var directions = [4]direction{
	{dr: 0, dc: 1},
	{dr: 1, dc: 0},
	{dr: 1, dc: 1},
	{dr: -1, dc: 1},
}

// EvaluateAnchored counts, for every empty cell, the length-L windows
// anchored at that cell (right, down, down-right, up-right) whose stone sum
// equals player*L. A window is only considered when all of its cells lie on
// the board.
//
// The anchor is always empty and contributes 0 to the sum, so for either
// player the sum never reaches ±L and the score is always zero. Search built
// on this evaluator falls through to the first empty cell in row-major order.
func EvaluateAnchored(b *Board, player Player, runLength int) int {
	if runLength <= 0 {
		return 0
	}
	target := player.Value() * runLength
	score := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.At(r, c) != Empty {
				continue
			}
			for _, d := range directions {
				if b.windowFits(r, c, d, runLength) && b.windowSum(r, c, d, runLength) == target {
					score++
				}
			}
		}
	}
	return score
}

// CountRuns counts every length-L window in the four directions that is
// entirely occupied by player, whatever the anchor. The result is nonzero
// exactly when player has completed a run, which makes it usable both as a
// win test and as a terminal-aware evaluator for deeper search.
func CountRuns(b *Board, player Player, runLength int) int {
	if runLength <= 0 {
		return 0
	}
	target := player.Value() * runLength
	count := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.At(r, c) != player.Cell() {
				continue
			}
			for _, d := range directions {
				if b.windowFits(r, c, d, runLength) && b.windowSum(r, c, d, runLength) == target {
					count++
				}
			}
		}
	}
	return count
}

func (b *Board) windowFits(r, c int, d direction, runLength int) bool {
	last := runLength - 1
	return b.InBounds(r, c) && b.InBounds(r+last*d.dr, c+last*d.dc)
}

func (b *Board) windowSum(r, c int, d direction, runLength int) int {
	sum := 0
	for k := 0; k < runLength; k++ {
		sum += int(b.At(r+k*d.dr, c+k*d.dc))
	}
	return sum
}

// Evaluators maps the names accepted on the command line to evaluators.
var Evaluators = map[string]Evaluate{
	"anchored": EvaluateAnchored,
	"runs":     CountRuns,
}

func LookupEvaluator(name string) (Evaluate, error) {
	if name == "" {
		return EvaluateAnchored, nil
	}
	evaluate, ok := Evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
	return evaluate, nil
}
