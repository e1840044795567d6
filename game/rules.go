package game

type Rules interface {
	RunLength() int
	IsLegal(b *Board, move Move) bool
	Winner(b *Board) (winner Player, ok bool)
	IsDraw(b *Board) bool
}
