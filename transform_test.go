package chessbits

import "testing"

func TestFlipsAreInvolutions(t *testing.T) {
	flips := map[string]func(Bitboard) Bitboard{
		"vertical":   Bitboard.FlipVertical,
		"horizontal": Bitboard.FlipHorizontal,
		"diag a1h8":  Bitboard.FlipDiagA1H8,
		"diag h1a8":  Bitboard.FlipDiagH1A8,
		"rotate 180": Bitboard.Rotate180,
	}
	for _, bb := range randomBitboards(1000) {
		for name, flip := range flips {
			if got := flip(flip(bb)); got != bb {
				t.Fatalf("%s twice on %#x gave %#x", name, uint64(bb), uint64(got))
			}
		}
	}
}

func TestRotations(t *testing.T) {
	for _, bb := range randomBitboards(1000) {
		r90 := bb.Rotate90()
		if got := r90.Rotate90().Rotate90().Rotate90(); got != bb {
			t.Fatalf("four quarter turns of %#x gave %#x", uint64(bb), uint64(got))
		}
		if r90.Rotate90() != bb.Rotate180() {
			t.Fatalf("two quarter turns of %#x differ from Rotate180", uint64(bb))
		}
		if r90.Rotate90().Rotate90() != bb.Rotate270() {
			t.Fatalf("three quarter turns of %#x differ from Rotate270", uint64(bb))
		}
		if bb.Rotate270().Rotate90() != bb {
			t.Fatalf("Rotate270 does not undo Rotate90 for %#x", uint64(bb))
		}
		if bb.Rotate180() != bb.Reverse() {
			t.Fatalf("Rotate180(%#x) != Reverse", uint64(bb))
		}
		if bb.FlipVertical().FlipHorizontal() != bb.FlipHorizontal().FlipVertical() {
			t.Fatalf("vertical and horizontal flips do not commute for %#x", uint64(bb))
		}
		if bb.PopCount() != r90.PopCount() {
			t.Fatalf("rotation changed the population of %#x", uint64(bb))
		}
	}
}

// Every bitboard transform must move each square exactly where the
// per-square reflection says it goes.
func TestFlipsMatchSquareReflections(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		cases := []struct {
			name string
			got  Bitboard
			want Square
		}{
			{"vertical", bb.FlipVertical(), sq.FlipVertical()},
			{"horizontal", bb.FlipHorizontal(), sq.FlipHorizontal()},
			{"diag a1h8", bb.FlipDiagA1H8(), sq.FlipDiagonal()},
			{"diag h1a8", bb.FlipDiagH1A8(), sq.FlipAntiDiagonal()},
			{"rotate 180", bb.Rotate180(), sq ^ 63},
		}
		for _, c := range cases {
			if c.got != SquareBB(c.want) {
				t.Fatalf("%s of %s: got %v, expected %s", c.name, sq, c.got.Scan(), c.want)
			}
		}
	}
}

func TestFlipHorizontalReversesEachByte(t *testing.T) {
	for _, bb := range randomBitboards(500) {
		var want Bitboard
		for r := 0; r < NumOfRanks; r++ {
			rank := uint8(bb >> (8 * r))
			var rev uint8
			for i := 0; i < 8; i++ {
				if rank&(1<<i) != 0 {
					rev |= 1 << (7 - i)
				}
			}
			want |= Bitboard(rev) << (8 * r)
		}
		if got := bb.FlipHorizontal(); got != want {
			t.Fatalf("FlipHorizontal(%#x) = %#x, expected %#x", uint64(bb), uint64(got), uint64(want))
		}
	}
}

func TestTransformKnownBoards(t *testing.T) {
	cases := []struct {
		name string
		got  Bitboard
		want Bitboard
	}{
		{"vflip rank 1", Rank1BB.FlipVertical(), Rank8BB},
		{"hflip file a", FileABB.FlipHorizontal(), FileHBB},
		{"hflip rank 1", Rank1BB.FlipHorizontal(), Rank1BB},
		{"diag rank 1", Rank1BB.FlipDiagA1H8(), FileABB},
		{"anti rank 1", Rank1BB.FlipDiagH1A8(), FileHBB},
		{"diag fixes diagonal", DiagonalA1H8BB.FlipDiagA1H8(), DiagonalA1H8BB},
		{"anti fixes anti-diagonal", DiagonalH1A8BB.FlipDiagH1A8(), DiagonalH1A8BB},
		{"rot90 rank 1", Rank1BB.Rotate90(), FileABB},
		{"rot90 file a", FileABB.Rotate90(), Rank8BB},
		{"rot270 rank 1", Rank1BB.Rotate270(), FileHBB},
		{"rot90 a1", SquareBB(A1).Rotate90(), SquareBB(A8)},
		{"rot90 h1", SquareBB(H1).Rotate90(), SquareBB(A1)},
		{"rot90 a8", SquareBB(A8).Rotate90(), SquareBB(H8)},
		{"rot90 e2", SquareBB(E2).Rotate90(), SquareBB(B4)},
		{"rot270 e2", SquareBB(E2).Rotate270(), SquareBB(G5)},
		{"rot90 light", LightSquaresBB.Rotate90(), DarkSquaresBB},
		{"rot180 light", LightSquaresBB.Rotate180(), LightSquaresBB},
		{"border", Border.Rotate90(), Border},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s: got %#x, expected %#x", c.name, uint64(c.got), uint64(c.want))
		}
	}
}

func TestCornerRoundTrip(t *testing.T) {
	corners := NewBitboard(A1, H1, A8, H8)
	viaFlips := corners.FlipHorizontal().FlipVertical()
	if viaFlips != corners.Rotate180() {
		t.Fatalf("hflip+vflip of the corners differs from Rotate180")
	}
	if viaFlips != corners || viaFlips.Rotate180() != corners {
		t.Fatalf("corner mask must be fixed by a half turn: %#x", uint64(viaFlips))
	}
	single := SquareBB(A1)
	if single.FlipHorizontal().FlipVertical() != single.Rotate180() || single.Rotate180() != SquareBB(H8) {
		t.Fatalf("a1 must land on h8 after a half turn")
	}
}

func BenchmarkFlipHorizontal(b *testing.B) {
	bb := Bitboard(0x0123456789ABCDEF)
	for i := 0; i < b.N; i++ {
		bb = bb.FlipHorizontal()
	}
}

func BenchmarkRotate90(b *testing.B) {
	bb := Bitboard(0x0123456789ABCDEF)
	for i := 0; i < b.N; i++ {
		bb = bb.Rotate90()
	}
}
