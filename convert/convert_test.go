package convert

import (
	"strings"
	"testing"

	"github.com/notnil/chess"

	"github.com/0x5844/chessbits"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestParseFENStart(t *testing.T) {
	pos, err := ParseFEN(startFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.Board.Bitboards() != chessbits.StartingBoard().Bitboards() {
		t.Fatalf("parsed start position differs: %s", pos.Board)
	}
	if pos.Turn != chessbits.White {
		t.Fatalf("expected White to move, got %s", pos.Turn.Name())
	}
}

func TestParseFEN(t *testing.T) {
	cases := []struct {
		fen    string
		turn   chessbits.Color
		pieces map[chessbits.Square]chessbits.Piece
	}{
		{
			fen:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
			turn: chessbits.White,
			pieces: map[chessbits.Square]chessbits.Piece{
				chessbits.E4: chessbits.WhitePawn, chessbits.E5: chessbits.BlackPawn,
				chessbits.E2: chessbits.NoPiece, chessbits.G8: chessbits.BlackKnight,
			},
		},
		{
			fen:  "6k1/5ppp/8/8/8/8/1q3PPP/6K1 b - - 3 31",
			turn: chessbits.Black,
			pieces: map[chessbits.Square]chessbits.Piece{
				chessbits.G8: chessbits.BlackKing, chessbits.B2: chessbits.BlackQueen,
				chessbits.G1: chessbits.WhiteKing, chessbits.A1: chessbits.NoPiece,
			},
		},
	}
	for _, c := range cases {
		pos, err := ParseFEN(c.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", c.fen, err)
		}
		if pos.Turn != c.turn {
			t.Fatalf("%q: turn = %s", c.fen, pos.Turn.Name())
		}
		for sq, want := range c.pieces {
			if got := pos.Board.Piece(sq); got != want {
				t.Fatalf("%q: Piece(%s) = %s, expected %s", c.fen, sq, got.Name(), want.Name())
			}
		}
		if placement := strings.Fields(c.fen)[0]; pos.Board.String() != placement {
			t.Fatalf("String() = %q, expected %q", pos.Board.String(), placement)
		}
	}
}

func TestParseFENInvalid(t *testing.T) {
	for _, fen := range []string{"", "not a fen", "rnbqkbnr/pppppppp/8/8 w - - 0 1"} {
		if _, err := ParseFEN(fen); err == nil {
			t.Fatalf("ParseFEN(%q) expected an error", fen)
		}
	}
}

func TestFromNotnil(t *testing.T) {
	board, err := FromNotnil(chess.NewGame().Position().Board())
	if err != nil {
		t.Fatalf("FromNotnil: %v", err)
	}
	if board.Bitboards() != chessbits.StartingBoard().Bitboards() {
		t.Fatalf("notnil start board differs: %s", board)
	}
}
