package chessbits

import "math/bits"

// Reflections and rotations of a whole bitboard. Each flip is an involution.
// See https://www.chessprogramming.org/Flipping_Mirroring_and_Rotating

// FlipVertical mirrors the board top-to-bottom (Rank 1 <-> Rank 8) by
// reversing the order of the eight rank bytes.
func (b Bitboard) FlipVertical() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// FlipHorizontal mirrors every rank left-to-right (File A <-> File H).
// The swaps of nibbles, bit pairs and single bits are done with rotates, so
// each pass leaves its result one rotation off; the final rotate right by 7
// puts every byte back in place.
func (b Bitboard) FlipHorizontal() Bitboard {
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
	)
	x := uint64(b)
	x ^= k4 & (x ^ bits.RotateLeft64(x, 8))
	x ^= k2 & (x ^ bits.RotateLeft64(x, 4))
	x ^= k1 & (x ^ bits.RotateLeft64(x, 2))
	return Bitboard(bits.RotateLeft64(x, -7))
}

// FlipDiagA1H8 mirrors the board about the a1-h8 diagonal (transpose),
// exchanging 4x4, then 2x2, then 1x1 blocks.
func (b Bitboard) FlipDiagA1H8() Bitboard {
	const (
		k1 = 0x5500550055005500
		k2 = 0x3333000033330000
		k4 = 0x0f0f0f0f00000000
	)
	x := uint64(b)
	t := k4 & (x ^ (x << 28))
	x ^= t ^ (t >> 28)
	t = k2 & (x ^ (x << 14))
	x ^= t ^ (t >> 14)
	t = k1 & (x ^ (x << 7))
	x ^= t ^ (t >> 7)
	return Bitboard(x)
}

// FlipDiagH1A8 mirrors the board about the h1-a8 anti-diagonal.
func (b Bitboard) FlipDiagH1A8() Bitboard {
	const (
		k1 = 0xaa00aa00aa00aa00
		k2 = 0xcccc0000cccc0000
		k4 = 0xf0f0f0f00f0f0f0f
	)
	x := uint64(b)
	t := x ^ (x << 36)
	x ^= k4 & (t ^ (x >> 36))
	t = k2 & (x ^ (x << 18))
	x ^= t ^ (t >> 18)
	t = k1 & (x ^ (x << 9))
	x ^= t ^ (t >> 9)
	return Bitboard(x)
}

// Rotate180 turns the board half way round (A1 <-> H8). Same result as Reverse.
func (b Bitboard) Rotate180() Bitboard {
	return b.FlipVertical().FlipHorizontal()
}

// Rotate90 turns the board a quarter clockwise: A1 goes to A8, Rank 1 becomes File A.
func (b Bitboard) Rotate90() Bitboard {
	return b.FlipDiagA1H8().FlipVertical()
}

// Rotate270 turns the board a quarter anticlockwise: A1 goes to H1.
func (b Bitboard) Rotate270() Bitboard {
	return b.FlipVertical().FlipDiagA1H8()
}
