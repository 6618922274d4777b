package chessbits

// A Position pairs a board with the side to move. The turn is only recorded:
// nothing in this package decides or changes it.
type Position struct {
	Board *Board
	Turn  Color
}

// NewPosition returns the starting position with White to move.
func NewPosition() *Position {
	return &Position{Board: StartingBoard(), Turn: White}
}

// String returns the FEN board and active color fields, e.g.
// "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w". A nil Board is
// written as the empty board.
func (p *Position) String() string {
	return p.board().String() + " " + p.Turn.String()
}

func (p *Position) board() *Board {
	if p.Board == nil {
		return &Board{}
	}
	return p.Board
}
