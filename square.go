package chessbits

import (
	"errors"
	"strconv"
)

// A File is a column of the board, FileA through FileH (0-7).
type File int8

// A Rank is a row of the board, Rank1 through Rank8 (0-7).
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String returns the file letter ("a".."h").
func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return string(rune('a' + f))
}

// String returns the rank digit ("1".."8").
func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "-"
	}
	return strconv.Itoa(int(r) + 1)
}

// A Square is one of the 64 squares, numbered 0 (a1) to 63 (h8) using
// little-endian rank-file mapping.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// NoSquare is returned where a square is expected but none exists.
	NoSquare
)

// ErrInvalidSquare is returned by ParseSquare for anything other than "a1".."h8".
var ErrInvalidSquare = errors.New("chessbits: invalid square")

// squareNames is indexed by Square; the array length keeps it in step with the enumeration.
var squareNames = [NumOfSquaresInBoard]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// NewSquare returns the square at the given file and rank, or NoSquare.
func NewSquare(f File, r Rank) Square {
	if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
		return NoSquare
	}
	return Square(int(r)*NumOfFiles + int(f))
}

// ParseSquare parses the two-character algebraic name of a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, ErrInvalidSquare
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1')), nil
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool { return sq <= H8 }

// File returns the file of the square.
func (sq Square) File() File { return File(sq % NumOfFiles) }

// Rank returns the rank of the square.
func (sq Square) Rank() Rank { return Rank(sq / NumOfFiles) }

// String returns the algebraic name of the square ("a1".."h8").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareNames[sq]
}

// --- Geometric Helpers ---

// FlipVertical mirrors the square vertically (Rank 1 <-> Rank 8).
func (sq Square) FlipVertical() Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return sq ^ 56
}

// FlipHorizontal mirrors the square horizontally (File A <-> File H).
func (sq Square) FlipHorizontal() Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return sq ^ 7
}

// FlipDiagonal mirrors the square along the a1-h8 diagonal: file and rank swap.
func (sq Square) FlipDiagonal() Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return NewSquare(File(sq.Rank()), Rank(sq.File()))
}

// FlipAntiDiagonal mirrors the square along the h1-a8 diagonal.
func (sq Square) FlipAntiDiagonal() Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return sq.FlipDiagonal() ^ 63
}
