package chessbits

import "testing"

func TestNewPosition(t *testing.T) {
	pos := NewPosition()
	if pos.Turn != White {
		t.Fatalf("starting position must have White to move")
	}
	if got := pos.String(); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w" {
		t.Fatalf("String() = %q", got)
	}
	pos.Turn = pos.Turn.Other()
	if got := pos.String(); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b" {
		t.Fatalf("String() = %q", got)
	}
}

func TestZeroPosition(t *testing.T) {
	var pos Position
	if got := pos.String(); got != "8/8/8/8/8/8/8/8 -" {
		t.Fatalf("String() = %q", got)
	}
}
