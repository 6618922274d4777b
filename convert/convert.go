// Package convert builds chessbits boards from other chess libraries and
// hands them back.
package convert

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"

	"github.com/0x5844/chessbits"
)

// ErrUnknownPiece is returned when a foreign board holds a piece with no
// chessbits counterpart.
var ErrUnknownPiece = errors.New("convert: unknown piece")

// ParseFEN parses a FEN string into a position. Only the placement and
// active color fields are kept; castling, en passant and clocks are validated
// by the parser and then dropped.
func ParseFEN(fen string) (*chessbits.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("convert: parse fen %q: %w", fen, err)
	}
	pos := chess.NewGame(opt).Position()
	board, err := FromNotnil(pos.Board())
	if err != nil {
		return nil, err
	}
	return &chessbits.Position{Board: board, Turn: colorFromNotnil(pos.Turn())}, nil
}

// FromNotnil copies the placement of a notnil/chess board.
func FromNotnil(b *chess.Board) (*chessbits.Board, error) {
	m := make(map[chessbits.Square]chessbits.Piece)
	for sq, p := range b.SquareMap() {
		if p == chess.NoPiece {
			continue
		}
		piece := chessbits.NewPiece(typeFromNotnil(p.Type()), colorFromNotnil(p.Color()))
		if piece == chessbits.NoPiece {
			return nil, fmt.Errorf("%w: %s on %s", ErrUnknownPiece, p, sq)
		}
		// notnil numbers squares a1=0 .. h8=63 as well.
		m[chessbits.Square(sq)] = piece
	}
	return chessbits.NewBoard(m), nil
}

func colorFromNotnil(c chess.Color) chessbits.Color {
	switch c {
	case chess.White:
		return chessbits.White
	case chess.Black:
		return chessbits.Black
	}
	return chessbits.NoColor
}

func typeFromNotnil(t chess.PieceType) chessbits.PieceType {
	switch t {
	case chess.Pawn:
		return chessbits.Pawn
	case chess.Knight:
		return chessbits.Knight
	case chess.Bishop:
		return chessbits.Bishop
	case chess.Rook:
		return chessbits.Rook
	case chess.Queen:
		return chessbits.Queen
	case chess.King:
		return chessbits.King
	}
	return chessbits.NoPieceType
}
