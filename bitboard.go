package chessbits

import (
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// Bitboard represents a 64-bit integer used to represent a set of squares.
// Bit i is square i: bit 0 = A1, bit 7 = H1, bit 56 = A8, bit 63 = H8.
type Bitboard uint64

// --- Constants ---

const (
	NumOfSquaresInBoard = 64 // Total squares on the board.
	NumOfFiles          = 8  // Number of files (columns).
	NumOfRanks          = 8  // Number of ranks (rows).
	NumOfPieces         = 6  // Number of piece types (P, N, B, R, Q, K).
	NumOfColors         = 2
)

// Internal color indices (White=1, Black=2 in Color).
const (
	WhiteIdx = 0
	BlackIdx = 1
)

// Internal piece type indices, also the probe order used by Board.Piece.
const (
	PawnIdx   = 0
	KnightIdx = 1
	BishopIdx = 2
	RookIdx   = 3
	QueenIdx  = 4
	KingIdx   = 5
)

// --- Predefined Bitboard Constants ---

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB // All squares set

	// Files (LSB = Rank 1)
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = FileABB << 1
	FileCBB Bitboard = FileABB << 2
	FileDBB Bitboard = FileABB << 3
	FileEBB Bitboard = FileABB << 4
	FileFBB Bitboard = FileABB << 5
	FileGBB Bitboard = FileABB << 6
	FileHBB Bitboard = FileABB << 7

	// Ranks (LSB = File A)
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)

	// Long diagonals
	DiagonalA1H8BB Bitboard = 0x8040201008040201
	DiagonalH1A8BB Bitboard = 0x0102040810204080

	// Colors
	LightSquaresBB Bitboard = 0x55AA55AA55AA55AA // A1 is dark (0), B1 is light (1)... H8 is dark (0)
	DarkSquaresBB  Bitboard = ^LightSquaresBB

	// Edge Masks
	NotAFile Bitboard = ^FileABB
	NotHFile Bitboard = ^FileHBB
	Border   Bitboard = FileABB | FileHBB | Rank1BB | Rank8BB // All squares on the edge

	EdgeFilesMask  Bitboard = FileABB | FileHBB                         // Mask for files A and H.
	EdgeRanksMask  Bitboard = Rank1BB | Rank8BB                         // Mask for ranks 1 and 8.
	CenterFourMask Bitboard = (FileDBB | FileEBB) & (Rank4BB | Rank5BB) // d4, e4, d5, e5
	CornerMask     Bitboard = (FileABB | FileHBB) & (Rank1BB | Rank8BB) // a1, h1, a8, h8
)

// --- Precomputed Geometry ---
// Initialized in init() and never written afterwards.
var (
	squareBBs         [NumOfSquaresInBoard]Bitboard // [square] Single-bit board.
	fileMasks         [NumOfFiles]Bitboard          // [file] Mask for each file.
	rankMasks         [NumOfRanks]Bitboard          // [rank] Mask for each rank.
	diagonalMasks     [NumOfSquaresInBoard]Bitboard // [square] Diagonal through the square (A1-H8 direction).
	antiDiagonalMasks [NumOfSquaresInBoard]Bitboard // [square] Anti-diagonal through the square (H1-A8 direction).
)

func init() {
	initSquareBBs()
	initFileRankMasks()
	initDiagonalMasks()
}

func initSquareBBs() {
	for sq := A1; sq <= H8; sq++ {
		squareBBs[sq] = 1 << sq
	}
}

func initFileRankMasks() {
	for f := FileA; f <= FileH; f++ {
		fileMasks[f] = FileABB << f
	}
	for r := Rank1; r <= Rank8; r++ {
		rankMasks[r] = Rank1BB << (r * 8)
	}
}

// A square lies on the diagonal of sq when file-rank matches, and on the
// anti-diagonal when file+rank matches.
func initDiagonalMasks() {
	for sq := A1; sq <= H8; sq++ {
		d := int(sq.File()) - int(sq.Rank())
		a := int(sq.File()) + int(sq.Rank())
		for other := A1; other <= H8; other++ {
			if int(other.File())-int(other.Rank()) == d {
				diagonalMasks[sq] |= squareBBs[other]
			}
			if int(other.File())+int(other.Rank()) == a {
				antiDiagonalMasks[sq] |= squareBBs[other]
			}
		}
	}
}

// SquareBB returns a bitboard with only the given square set. Returns EmptyBB for invalid squares.
func SquareBB(sq Square) Bitboard {
	if sq.IsValid() {
		return squareBBs[sq]
	}
	return EmptyBB
}

// NewBitboard returns a bitboard with every given square set.
func NewBitboard(squares ...Square) Bitboard {
	b := EmptyBB
	for _, sq := range squares {
		b |= SquareBB(sq)
	}
	return b
}

// BitboardOf converts a raw unsigned integer of any width into a Bitboard.
func BitboardOf[T constraints.Unsigned](v T) Bitboard { return Bitboard(v) }

// BBFile returns a bitboard mask for the given file.
func BBFile(f File) Bitboard {
	if f >= FileA && f <= FileH {
		return fileMasks[f]
	}
	return EmptyBB
}

// BBRank returns a bitboard mask for the given rank.
func BBRank(r Rank) Bitboard {
	if r >= Rank1 && r <= Rank8 {
		return rankMasks[r]
	}
	return EmptyBB
}

// DiagonalMask returns the a1-h8 direction diagonal passing through sq.
func DiagonalMask(sq Square) Bitboard {
	if !sq.IsValid() {
		return EmptyBB
	}
	return diagonalMasks[sq]
}

// AntiDiagonalMask returns the h1-a8 direction diagonal passing through sq.
func AntiDiagonalMask(sq Square) Bitboard {
	if !sq.IsValid() {
		return EmptyBB
	}
	return antiDiagonalMasks[sq]
}

// SquareColor returns the color of the square (White for light, Black for dark).
func SquareColor(sq Square) Color {
	if !sq.IsValid() {
		return NoColor
	}
	if (SquareBB(sq) & LightSquaresBB) != 0 {
		return White
	}
	return Black
}

// --- Bitboard Manipulation ---

// Set sets the bit corresponding to the square. Handles invalid squares.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear clears the bit corresponding to the square. Handles invalid squares.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Toggle toggles the bit corresponding to the square. Handles invalid squares.
func (b Bitboard) Toggle(sq Square) Bitboard { return b ^ SquareBB(sq) }

// Occupied checks if the square is occupied (bit is set). Handles invalid squares.
func (b Bitboard) Occupied(sq Square) bool {
	return (b & SquareBB(sq)) != 0
}

// Intersects reports whether b and other share at least one square.
// It is not a subset test.
func (b Bitboard) Intersects(other Bitboard) bool { return b&other != 0 }

// IsEmpty checks if the bitboard is empty.
func (b Bitboard) IsEmpty() bool { return b == EmptyBB }

// IsFull checks if every square is set.
func (b Bitboard) IsFull() bool { return b == FullBB }

// IsBorder reports whether any set square lies on the edge of the board.
func (b Bitboard) IsBorder() bool { return b&Border != 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// popCountSWAR is the parallel-reduction population count: 2-bit sums,
// then 4-bit, then 8-bit, then one multiply to add the byte lanes.
func (b Bitboard) popCountSWAR() int {
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
		kf = 0x0101010101010101
	)
	x := uint64(b)
	x -= (x >> 1) & k1
	x = (x & k2) + ((x >> 2) & k2)
	x = (x + (x >> 4)) & k4
	return int((x * kf) >> 56)
}

// LeadingZeros counts zero bits above the most significant set bit (64 when empty).
func (b Bitboard) LeadingZeros() int { return bits.LeadingZeros64(uint64(b)) }

// TrailingZeros counts zero bits below the least significant set bit (64 when empty).
func (b Bitboard) TrailingZeros() int { return bits.TrailingZeros64(uint64(b)) }

// LSB finds the index of the least significant bit. Returns (square, true) or (NoSquare, false).
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(b.TrailingZeros()), true
}

// MSB finds the index of the most significant bit. Returns (square, true) or (NoSquare, false).
func (b Bitboard) MSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(NumOfSquaresInBoard - 1 - b.LeadingZeros()), true
}

// PopLSB finds and removes the least significant bit. Returns (square, new bitboard, true) or (NoSquare, original bitboard, false).
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	sq, ok := b.LSB()
	if !ok {
		return NoSquare, b, false
	}
	// b & (b-1) clears the LSB
	return sq, b & (b - 1), true
}

// PopMSB finds and removes the most significant bit. Returns (square, new bitboard, true) or (NoSquare, original bitboard, false).
func (b Bitboard) PopMSB() (Square, Bitboard, bool) {
	sq, ok := b.MSB()
	if !ok {
		return NoSquare, b, false
	}
	return sq, b ^ SquareBB(sq), true
}

// Scan returns a slice of all squares corresponding to set bits, ordered LSB to MSB.
func (b Bitboard) Scan() []Square {
	squares := make([]Square, 0, b.PopCount())
	for tempBB := b; tempBB != EmptyBB; {
		sq, next, _ := tempBB.PopLSB()
		squares = append(squares, sq)
		tempBB = next
	}
	return squares
}

// Squares is an alias for Scan().
func (b Bitboard) Squares() []Square { return b.Scan() }

// String returns the 64-bit binary string representation (MSB=H8, LSB=A1).
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.Grow(NumOfSquaresInBoard)
	for i := NumOfSquaresInBoard - 1; i >= 0; i-- {
		if (uint64(b)>>i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Dump returns eight lines of eight binary digits, one per rank byte, from
// the most significant byte (rank 8) down to rank 1. Within a line the
// leftmost digit is the h-file bit.
func (b Bitboard) Dump() string {
	s := b.String()
	var sb strings.Builder
	for r := 0; r < NumOfRanks; r++ {
		sb.WriteString(s[r*NumOfFiles : (r+1)*NumOfFiles])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Draw returns a string visually representing the bitboard on a chessboard grid.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String() + " ")
		for f := FileA; f <= FileH; f++ {
			if b.Occupied(NewSquare(f, r)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(r.String() + "\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// Reverse reverses the bits of the bitboard (A1 <-> H8).
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// And performs a bitwise AND operation.
func (b Bitboard) And(other Bitboard) Bitboard { return b & other }

// Or performs a bitwise OR operation.
func (b Bitboard) Or(other Bitboard) Bitboard { return b | other }

// Xor performs a bitwise XOR operation.
func (b Bitboard) Xor(other Bitboard) Bitboard { return b ^ other }

// Not performs a bitwise NOT operation.
func (b Bitboard) Not() Bitboard { return ^b }

// AndNot performs a bitwise AND NOT operation (b & ~other).
func (b Bitboard) AndNot(other Bitboard) Bitboard { return b &^ other }

// Shl shifts left by the integer value of n. Shifting by 64 or more yields EmptyBB.
func (b Bitboard) Shl(n Bitboard) Bitboard {
	if n >= NumOfSquaresInBoard {
		return EmptyBB
	}
	return b << n
}

// Shr shifts right by the integer value of n. Shifting by 64 or more yields EmptyBB.
func (b Bitboard) Shr(n Bitboard) Bitboard {
	if n >= NumOfSquaresInBoard {
		return EmptyBB
	}
	return b >> n
}

// Shift shifts the bitboard left (positive) or right (negative).
// Amounts of 64 or more in either direction yield EmptyBB.
func (b Bitboard) Shift(amount int) Bitboard {
	if amount >= 0 {
		return b.Shl(Bitboard(amount))
	}
	return b.Shr(Bitboard(-amount))
}
