package gamemaster

import (
	"fmt"

	"gomoku/game"
)

type LocalEngine struct {
	size     int
	rules    game.Rules
	board    *game.Board
	toMove   game.Player
	updateCh chan Update
	history  []Update
	winner   game.Player
	won      bool
	gameOver bool
}

// NewLocalEngine returns an engine for size×size games under rules. Call
// Init before playing.
var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(size int, rules game.Rules) *LocalEngine {
	if size <= 0 {
		panic("board size must be positive")
	}
	if rules == nil {
		panic("rules are required")
	}
	return &LocalEngine{size: size, rules: rules}
}

// Init starts a new game with Black to move and returns a copy of the empty
// board along with a non-blocking update feed.
func (e *LocalEngine) Init() (*game.Board, UpdateGetter) {
	e.board = game.NewBoard(e.size)
	e.toMove = game.Black
	e.history = nil
	e.winner, e.won, e.gameOver = 0, false, false
	// Every cell can be played at most once, so Play never blocks on the feed
	e.updateCh = make(chan Update, e.size*e.size)

	updates := e.updateCh
	return e.board.Clone(), func() (Update, bool) {
		select {
		case u, ok := <-updates:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

func (e *LocalEngine) Play(player game.Player, move game.Move) error {
	if e.board == nil {
		panic("engine not initialized")
	}
	if e.gameOver {
		return ErrGameOver
	}
	if player != e.toMove {
		return fmt.Errorf("%s played on %s's turn: %w", player, e.toMove, ErrNotYourTurn)
	}
	if !e.rules.IsLegal(e.board, move) {
		return fmt.Errorf("%s at %s: %w", player, move, ErrIllegalMove)
	}

	e.board.Place(move, player)
	u := Update{Step: len(e.history) + 1, Player: player, Move: move}
	e.history = append(e.history, u)
	e.updateCh <- u

	if winner, ok := e.rules.Winner(e.board); ok {
		e.winner, e.won = winner, true
		e.finish()
	} else if e.rules.IsDraw(e.board) {
		e.finish()
	} else {
		e.toMove = player.Opponent()
	}
	return nil
}

func (e *LocalEngine) finish() {
	e.gameOver = true
	close(e.updateCh)
}

func (e *LocalEngine) ToMove() game.Player {
	return e.toMove
}

// Board returns a copy of the current board.
func (e *LocalEngine) Board() *game.Board {
	return e.board.Clone()
}

func (e *LocalEngine) IsOver() bool {
	return e.gameOver
}

// Winner reports the side that completed a run; false on a draw or while the
// game is running.
func (e *LocalEngine) Winner() (game.Player, bool) {
	return e.winner, e.won
}

func (e *LocalEngine) History() []Update {
	return append([]Update(nil), e.history...)
}
