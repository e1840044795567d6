package game

// StandardRules is free-style connect-N: the first run of exactly or more
// than WinLength stones in any of the four directions wins.
type StandardRules struct {
	WinLength int
}

func NewStandardRules(winLength int) *StandardRules {
	if winLength <= 0 {
		panic("win length must be positive")
	}
	return &StandardRules{
		WinLength: winLength,
	}
}

func (sr *StandardRules) RunLength() int {
	return sr.WinLength
}

// IsLegal reports whether move is on the board and the cell is empty.
func (sr *StandardRules) IsLegal(b *Board, move Move) bool {
	return b.IsEmpty(move.Row, move.Col)
}

func (sr *StandardRules) Winner(b *Board) (Player, bool) {
	for _, p := range []Player{Black, White} {
		if CountRuns(b, p, sr.WinLength) > 0 {
			return p, true
		}
	}
	return 0, false
}

// IsDraw reports a full board without a winner.
func (sr *StandardRules) IsDraw(b *Board) bool {
	if b.HasEmpty() {
		return false
	}
	_, won := sr.Winner(b)
	return !won
}
