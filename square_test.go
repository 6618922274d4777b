package chessbits

import (
	"errors"
	"testing"
)

func TestSquareNames(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		want := sq.File().String() + sq.Rank().String()
		if sq.String() != want {
			t.Fatalf("square %d: String() = %q, expected %q", sq, sq.String(), want)
		}
		if NewSquare(sq.File(), sq.Rank()) != sq {
			t.Fatalf("NewSquare(File, Rank) does not round trip %s", sq)
		}
		parsed, err := ParseSquare(want)
		if err != nil || parsed != sq {
			t.Fatalf("ParseSquare(%q) = %s, %v", want, parsed, err)
		}
	}
	if A1.String() != "a1" || H1.String() != "h1" || A8.String() != "a8" || H8.String() != "h8" || E4.String() != "e4" {
		t.Fatalf("corner and centre squares are misnamed")
	}
	if NoSquare.String() != "-" || NoSquare.IsValid() {
		t.Fatalf("NoSquare must be invalid and render as '-'")
	}
	if int(H8) != 63 || int(A8) != 56 || int(H1) != 7 {
		t.Fatalf("square ordinals are wrong")
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a9", "a0", "A1", "a10", "e4 "} {
		sq, err := ParseSquare(s)
		if !errors.Is(err, ErrInvalidSquare) || sq != NoSquare {
			t.Fatalf("ParseSquare(%q) = %s, %v; expected NoSquare, ErrInvalidSquare", s, sq, err)
		}
	}
}

func TestNewSquareOutOfRange(t *testing.T) {
	if NewSquare(File(8), Rank1) != NoSquare || NewSquare(FileA, Rank(-1)) != NoSquare {
		t.Fatalf("NewSquare out of range must be NoSquare")
	}
	if File(9).String() != "-" || Rank(8).String() != "-" {
		t.Fatalf("out of range file/rank must render as '-'")
	}
}

func TestSquareReflections(t *testing.T) {
	cases := []struct {
		name string
		got  Square
		want Square
	}{
		{"vertical a1", A1.FlipVertical(), A8},
		{"vertical e2", E2.FlipVertical(), E7},
		{"horizontal a1", A1.FlipHorizontal(), H1},
		{"horizontal c6", C6.FlipHorizontal(), F6},
		{"diagonal b1", B1.FlipDiagonal(), A2},
		{"diagonal d4", D4.FlipDiagonal(), D4},
		{"anti-diagonal a1", A1.FlipAntiDiagonal(), H8},
		{"anti-diagonal b1", B1.FlipAntiDiagonal(), H7},
		{"anti-diagonal e4", E4.FlipAntiDiagonal(), E4},
		{"invalid", NoSquare.FlipVertical(), NoSquare},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s: got %s, expected %s", c.name, c.got, c.want)
		}
	}
}
