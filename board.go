package chessbits

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOverlappingPieces is returned when two piece bitboards share a square.
	ErrOverlappingPieces = errors.New("chessbits: piece bitboards overlap")
	// ErrBinaryLength is returned by UnmarshalBinary for input that is not 96 bytes.
	ErrBinaryLength = errors.New("chessbits: invalid number of bytes for board unmarshal binary (expected 96)")
	// ErrInvalidPlacement is returned by UnmarshalText for a malformed FEN board field.
	ErrInvalidPlacement = errors.New("chessbits: invalid FEN placement")
)

// boardBinarySize is 12 bitboards of 8 bytes.
const boardBinarySize = NumOfColors * NumOfPieces * 8

// A Board represents the placement of pieces using one bitboard per color and
// piece type. The color aggregates are not stored: White, Black and Occupied
// are computed from the twelve piece boards on every call, so they always
// equal the union of their constituents.
//
// A Board is never modified after construction and may be shared between
// goroutines.
type Board struct {
	bbs [NumOfColors][NumOfPieces]Bitboard // [colorIdx][pieceIdx]
}

// StartingBoard returns the standard initial layout.
func StartingBoard() *Board {
	return &Board{bbs: [NumOfColors][NumOfPieces]Bitboard{
		WhiteIdx: {
			PawnIdx:   0x000000000000FF00,
			KnightIdx: 0x0000000000000042,
			BishopIdx: 0x0000000000000024,
			RookIdx:   0x0000000000000081,
			QueenIdx:  0x0000000000000008,
			KingIdx:   0x0000000000000010,
		},
		BlackIdx: {
			PawnIdx:   0x00FF000000000000,
			KnightIdx: 0x4200000000000000,
			BishopIdx: 0x2400000000000000,
			RookIdx:   0x8100000000000000,
			QueenIdx:  0x0800000000000000,
			KingIdx:   0x1000000000000000,
		},
	}}
}

// NewBoard returns a board initialized from a square-to-piece mapping.
// Invalid squares and NoPiece entries are ignored.
func NewBoard(m map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range m {
		if !sq.IsValid() || !p.valid() {
			continue
		}
		c, t := pieceIndices(p)
		b.bbs[c][t] |= SquareBB(sq)
	}
	return b
}

// NewBoardFromBitboards returns a board holding the given piece bitboards,
// indexed [colorIdx][pieceIdx]. It fails if any square is claimed twice.
func NewBoardFromBitboards(bbs [NumOfColors][NumOfPieces]Bitboard) (*Board, error) {
	b := &Board{bbs: bbs}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks that no square is occupied by more than one piece.
func (b *Board) Validate() error {
	var seen Bitboard
	for c := 0; c < NumOfColors; c++ {
		for t := 0; t < NumOfPieces; t++ {
			bb := b.bbs[c][t]
			if overlap := seen & bb; overlap != EmptyBB {
				sq, _ := overlap.LSB()
				return fmt.Errorf("%w: %s", ErrOverlappingPieces, sq)
			}
			seen |= bb
		}
	}
	return nil
}

// pieceIndices returns the internal [colorIdx][pieceIdx] of a valid piece.
func pieceIndices(p Piece) (int, int) {
	return ColorToIndex(p.Color()), PieceTypeToIndex(p.Type())
}

// PieceBB returns the bitboard of the given piece, EmptyBB for NoPiece.
func (b *Board) PieceBB(p Piece) Bitboard {
	if !p.valid() {
		return EmptyBB
	}
	c, t := pieceIndices(p)
	return b.bbs[c][t]
}

// Bitboards returns a copy of the twelve piece bitboards, indexed [colorIdx][pieceIdx].
func (b *Board) Bitboards() [NumOfColors][NumOfPieces]Bitboard { return b.bbs }

// ColorBB returns the squares occupied by pieces of color c.
func (b *Board) ColorBB(c Color) Bitboard {
	if c != White && c != Black {
		return EmptyBB
	}
	bbs := &b.bbs[ColorToIndex(c)]
	return bbs[PawnIdx] | bbs[KnightIdx] | bbs[BishopIdx] | bbs[RookIdx] | bbs[QueenIdx] | bbs[KingIdx]
}

// White returns all squares occupied by white pieces.
func (b *Board) White() Bitboard { return b.ColorBB(White) }

// Black returns all squares occupied by black pieces.
func (b *Board) Black() Bitboard { return b.ColorBB(Black) }

// Occupied returns all occupied squares.
func (b *Board) Occupied() Bitboard { return b.White() | b.Black() }

// IsEmpty reports whether no piece is on the board.
func (b *Board) IsEmpty() bool { return b.Occupied().IsEmpty() }

// HasEmpty reports whether the given square is unoccupied.
func (b *Board) HasEmpty(sq Square) bool { return !b.Occupied().Occupied(sq) }

// Count returns the number of pieces p on the board.
func (b *Board) Count(p Piece) int { return b.PieceBB(p).PopCount() }

// Piece returns the piece located on the given square.
//
// The color aggregates are tested first, white then black. Within a color the
// pawn, knight, bishop, rook and queen boards are probed in that order; a
// square that is in the aggregate but in none of those five must hold the
// king, so the king board is not probed. That shortcut is only correct
// because the aggregate is the union of the six piece boards.
func (b *Board) Piece(sq Square) Piece {
	sqBB := SquareBB(sq)
	if sqBB == EmptyBB {
		return NoPiece
	}
	for _, c := range [NumOfColors]Color{White, Black} {
		if !b.ColorBB(c).Intersects(sqBB) {
			continue
		}
		bbs := &b.bbs[ColorToIndex(c)]
		for t := PawnIdx; t < KingIdx; t++ {
			if bbs[t].Intersects(sqBB) {
				return NewPiece(IndexToPieceType(t), c)
			}
		}
		return NewPiece(King, c)
	}
	return NoPiece
}

// SquareMap returns a mapping of squares to pieces. Only occupied squares are included.
func (b *Board) SquareMap() map[Square]Piece {
	m := map[Square]Piece{}
	for tempBB := b.Occupied(); tempBB != EmptyBB; {
		sq, next, _ := tempBB.PopLSB()
		tempBB = next
		m[sq] = b.Piece(sq)
	}
	return m
}

// transform applies the same bitboard transform to all twelve piece boards.
func (b *Board) transform(fn func(Bitboard) Bitboard) *Board {
	out := &Board{}
	for c := range b.bbs {
		for t := range b.bbs[c] {
			out.bbs[c][t] = fn(b.bbs[c][t])
		}
	}
	return out
}

// FlipDirection is the direction for the Board.Flip method
type FlipDirection int

const (
	UpDown    FlipDirection = iota // flips the board's rank values
	LeftRight                      // flips the board's file values
)

// Flip flips the board over the horizontal or vertical center line.
func (b *Board) Flip(fd FlipDirection) *Board {
	if fd == LeftRight {
		return b.transform(Bitboard.FlipHorizontal)
	}
	return b.transform(Bitboard.FlipVertical)
}

// Transpose flips the board over the A1-H8 diagonal.
func (b *Board) Transpose() *Board { return b.transform(Bitboard.FlipDiagA1H8) }

// Rotate turns the board 90 degrees clockwise.
func (b *Board) Rotate() *Board { return b.transform(Bitboard.Rotate90) }

// Rotate180 turns the board half way round, as seen from the black side.
func (b *Board) Rotate180() *Board { return b.transform(Bitboard.Rotate180) }

// --- Rendering ---

// Draw returns an 8x8 grid of piece glyphs, rank 8 at the top and file a on
// the left, with a blank cell for an empty square.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  ┌──┬──┬──┬──┬──┬──┬──┬──┐\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String() + " │")
		for f := FileA; f <= FileH; f++ {
			sb.WriteString(b.Piece(NewSquare(f, r)).String() + " │")
		}
		sb.WriteByte('\n')
		if r > Rank1 {
			sb.WriteString("  ├──┼──┼──┼──┼──┼──┼──┼──┤\n")
		}
	}
	sb.WriteString("  └──┴──┴──┴──┴──┴──┴──┴──┘\n")
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

// String implements the fmt.Stringer interface and returns
// a string in the FEN board format: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
func (b *Board) String() string {
	var fen strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		emptyCount := 0
		for f := FileA; f <= FileH; f++ {
			p := b.Piece(NewSquare(f, r))
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				fen.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			fen.WriteString(p.FEN())
		}
		if emptyCount > 0 {
			fen.WriteString(strconv.Itoa(emptyCount))
		}
		if r != Rank1 {
			fen.WriteString("/")
		}
	}
	return fen.String()
}

// --- Serialization ---

// binaryOrder is the order of the piece bitboards in the binary encoding.
var binaryOrder = [NumOfColors * NumOfPieces]Piece{
	WhiteKing, WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight, WhitePawn,
	BlackKing, BlackQueen, BlackRook, BlackBishop, BlackKnight, BlackPawn,
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
// Encodes the 12 piece bitboards as big-endian uint64 values.
func (b *Board) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, boardBinarySize)
	for _, p := range binaryOrder {
		data = binary.BigEndian.AppendUint64(data, uint64(b.PieceBB(p)))
	}
	return data, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Board) UnmarshalBinary(data []byte) error {
	if len(data) != boardBinarySize {
		return ErrBinaryLength
	}
	var bbs [NumOfColors][NumOfPieces]Bitboard
	for i, p := range binaryOrder {
		c, t := pieceIndices(p)
		bbs[c][t] = Bitboard(binary.BigEndian.Uint64(data[i*8 : (i+1)*8]))
	}
	decoded, err := NewBoardFromBitboards(bbs)
	if err != nil {
		return fmt.Errorf("chessbits: unmarshal board: %w", err)
	}
	*b = *decoded
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. Returns FEN board string.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. Parses the
// FEN board field only, e.g. "8/8/8/4k3/8/8/8/4K3".
func (b *Board) UnmarshalText(text []byte) error {
	decoded, err := parsePlacement(string(text))
	if err != nil {
		return err
	}
	*b = *decoded
	return nil
}

var fenPieces = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

func parsePlacement(s string) (*Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != NumOfRanks {
		return nil, fmt.Errorf("%w: %q has %d ranks", ErrInvalidPlacement, s, len(rows))
	}
	m := make(map[Square]Piece)
	for i, row := range rows {
		r := Rank8 - Rank(i)
		f := FileA
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				if f > FileH+1 {
					return nil, fmt.Errorf("%w: %q on rank %s", ErrInvalidPlacement, row, r)
				}
				continue
			}
			p, ok := fenPieces[c]
			if !ok || f > FileH {
				return nil, fmt.Errorf("%w: %q on rank %s", ErrInvalidPlacement, row, r)
			}
			m[NewSquare(f, r)] = p
			f++
		}
		if f != FileH+1 {
			return nil, fmt.Errorf("%w: %q on rank %s", ErrInvalidPlacement, row, r)
		}
	}
	return NewBoard(m), nil
}
