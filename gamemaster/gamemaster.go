package gamemaster

import (
	"errors"

	"gomoku/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not your turn")
)

// Update records one applied move.
type Update struct {
	Step   int         `json:"step"`
	Player game.Player `json:"player"`
	Move   game.Move   `json:"move"`
}

// UpdateGetter returns the next unread update, or false when none is pending
// or the game is over and every update was read.
type UpdateGetter func() (Update, bool)

// Engine is the authority on the board: it validates and applies moves and
// decides when the game ends.
type Engine interface {
	Init() (*game.Board, UpdateGetter)
	Play(player game.Player, move game.Move) error
	ToMove() game.Player
	Board() *game.Board
	IsOver() bool
	Winner() (game.Player, bool)
}
