package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotSquare   = errors.New("board is not square")
	ErrInvalidCell = errors.New("cell value must be -1, 0 or 1")
)

// Cell holds the state of a single intersection.
type Cell int8

const (
	Empty      Cell = 0
	BlackStone Cell = Cell(Black)
	WhiteStone Cell = Cell(White)
)

func (c Cell) String() string {
	switch c {
	case BlackStone:
		return "X"
	case WhiteStone:
		return "O"
	default:
		return "."
	}
}

// Board is a dense N×N grid stored in row-major order. The zero value is an
// empty 0×0 board.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic("board size must be positive")
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// FromRows builds a board from the ±1/0 encoding used on the wire.
func FromRows(rows [][]int) (*Board, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("empty board: %w", ErrNotSquare)
	}
	b := NewBoard(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), n, ErrNotSquare)
		}
		for c, v := range row {
			if v < -1 || v > 1 {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, v, ErrInvalidCell)
			}
			b.cells[b.index(r, c)] = Cell(v)
		}
	}
	return b, nil
}

// Rows returns the board in the ±1/0 wire encoding.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range rows {
		rows[r] = make([]int, b.size)
		for c := range rows[r] {
			rows[r][c] = int(b.At(r, c))
		}
	}
	return rows
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b *Board) Set(row, col int, value Cell) {
	b.cells[b.index(row, col)] = value
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.At(row, col) == Empty
}

// Place puts a stone for player on move and returns a function restoring the
// previous cell state. Callers defer the returned function so the cell is
// restored on every exit path.
func (b *Board) Place(move Move, player Player) (undo func()) {
	i := b.index(move.Row, move.Col)
	previous := b.cells[i]
	b.cells[i] = player.Cell()
	return func() {
		b.cells[i] = previous
	}
}

// EmptyCells lists every empty cell in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(b.cells))
	for i, cell := range b.cells {
		if cell == Empty {
			moves = append(moves, Move{Row: i / b.size, Col: i % b.size})
		}
	}
	return moves
}

func (b *Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == Empty {
			count++
		}
	}
	return count
}

func (b *Board) HasEmpty() bool {
	for _, cell := range b.cells {
		if cell == Empty {
			return true
		}
	}
	return false
}

func (b *Board) Clone() *Board {
	clone := &Board{size: b.size, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(r, c).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d board", row, col, b.size, b.size))
	}
	return row*b.size + col
}
