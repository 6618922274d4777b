package convert

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/0x5844/chessbits"
)

// FromDragontooth copies the piece bitboards of a dragontoothmg board. Both
// libraries use little-endian rank-file mapping, so the words are taken as is.
// The aggregate All fields are ignored and recomputed on demand.
func FromDragontooth(b *dragontoothmg.Board) (*chessbits.Board, error) {
	var bbs [chessbits.NumOfColors][chessbits.NumOfPieces]chessbits.Bitboard
	bbs[chessbits.WhiteIdx] = fromBitboards(&b.White)
	bbs[chessbits.BlackIdx] = fromBitboards(&b.Black)
	return chessbits.NewBoardFromBitboards(bbs)
}

// PositionFromDragontooth is FromDragontooth with the side to move attached.
func PositionFromDragontooth(b *dragontoothmg.Board) (*chessbits.Position, error) {
	board, err := FromDragontooth(b)
	if err != nil {
		return nil, err
	}
	turn := chessbits.Black
	if b.Wtomove {
		turn = chessbits.White
	}
	return &chessbits.Position{Board: board, Turn: turn}, nil
}

// ToDragontooth builds a dragontoothmg board for the position. Castling
// rights, en passant and clocks are not tracked by chessbits and are left
// empty. A nil Board converts as the empty board.
func ToDragontooth(pos *chessbits.Position) dragontoothmg.Board {
	turn := chessbits.White
	if pos.Turn == chessbits.Black {
		turn = chessbits.Black
	}
	board := pos.Board
	if board == nil {
		board = &chessbits.Board{}
	}
	return dragontoothmg.ParseFen(board.String() + " " + turn.String() + " - - 0 1")
}

func fromBitboards(bb *dragontoothmg.Bitboards) [chessbits.NumOfPieces]chessbits.Bitboard {
	return [chessbits.NumOfPieces]chessbits.Bitboard{
		chessbits.PawnIdx:   chessbits.BitboardOf(bb.Pawns),
		chessbits.KnightIdx: chessbits.BitboardOf(bb.Knights),
		chessbits.BishopIdx: chessbits.BitboardOf(bb.Bishops),
		chessbits.RookIdx:   chessbits.BitboardOf(bb.Rooks),
		chessbits.QueenIdx:  chessbits.BitboardOf(bb.Queens),
		chessbits.KingIdx:   chessbits.BitboardOf(bb.Kings),
	}
}
