package game

import (
	"errors"
	"fmt"
)

var ErrInvalidPlayer = errors.New("player must be 1 or -1")

// Player represents one of the two sides. The underlying value is the
// stone value the side contributes to a window sum.
type Player int8

const (
	Black Player = 1  // Moves first, maximizes
	White Player = -1 // Minimizes
)

// ParsePlayer converts the ±1 wire encoding into a Player.
func ParsePlayer(v int) (Player, error) {
	switch v {
	case int(Black):
		return Black, nil
	case int(White):
		return White, nil
	default:
		return 0, fmt.Errorf("parse player %d: %w", v, ErrInvalidPlayer)
	}
}

func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

// Value returns the signed encoding (+1 or -1).
func (p Player) Value() int {
	return int(p)
}

// Cell returns the cell state a stone of this player occupies.
func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Player(%d)", int8(p))
	}
}
