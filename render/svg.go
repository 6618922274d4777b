// Package render draws boards and bitboards as SVG images.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/0x5844/chessbits"
)

// Options controls the look of a rendered board.
type Options struct {
	SquareSize int    // side of one square in pixels
	Light      string // fill color of the light squares
	Dark       string // fill color of the dark squares
	Highlight  string // fill color of squares set in a mask
	Flipped    bool   // draw from Black's side, h1 in the top-left corner
}

// DefaultOptions are used for any zero field of the Options passed in.
var DefaultOptions = Options{
	SquareSize: 45,
	Light:      "#f0d9b5",
	Dark:       "#b58863",
	Highlight:  "#cd5c5c",
}

func (o Options) withDefaults() Options {
	if o.SquareSize <= 0 {
		o.SquareSize = DefaultOptions.SquareSize
	}
	if o.Light == "" {
		o.Light = DefaultOptions.Light
	}
	if o.Dark == "" {
		o.Dark = DefaultOptions.Dark
	}
	if o.Highlight == "" {
		o.Highlight = DefaultOptions.Highlight
	}
	return o
}

// Board writes an SVG image of b to w: the 64 squares in their light and dark
// colors, with the glyph of each piece centered on its square.
func Board(w io.Writer, b *chessbits.Board, opts Options) {
	opts = opts.withDefaults()
	if opts.Flipped {
		b = b.Rotate180()
	}
	canvas := start(w, opts)
	canvas.Title(b.String())
	grid(canvas, opts, chessbits.EmptyBB)

	size := opts.SquareSize
	canvas.Gstyle(fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*4/5))
	for _, sq := range b.Occupied().Scan() {
		x, y := origin(sq, size)
		canvas.Text(x+size/2, y+size/2, b.Piece(sq).String())
	}
	canvas.Gend()
	canvas.End()
}

// Mask writes an SVG image of bb to w, filling set squares with the highlight color.
func Mask(w io.Writer, bb chessbits.Bitboard, opts Options) {
	opts = opts.withDefaults()
	if opts.Flipped {
		bb = bb.Rotate180()
	}
	canvas := start(w, opts)
	canvas.Title(fmt.Sprintf("%#016x", uint64(bb)))
	grid(canvas, opts, bb)
	canvas.End()
}

func start(w io.Writer, opts Options) *svg.SVG {
	canvas := svg.New(w)
	side := chessbits.NumOfFiles * opts.SquareSize
	canvas.Start(side, side)
	return canvas
}

// grid draws one rect per square, rank 8 at the top.
func grid(canvas *svg.SVG, opts Options, highlight chessbits.Bitboard) {
	for sq := chessbits.A1; sq <= chessbits.H8; sq++ {
		fill := opts.Dark
		switch {
		case highlight.Occupied(sq):
			fill = opts.Highlight
		case chessbits.SquareColor(sq) == chessbits.White:
			fill = opts.Light
		}
		x, y := origin(sq, opts.SquareSize)
		canvas.Rect(x, y, opts.SquareSize, opts.SquareSize, "fill:"+fill)
	}
}

// origin returns the top-left pixel of sq.
func origin(sq chessbits.Square, size int) (int, int) {
	return int(sq.File()) * size, int(chessbits.Rank8-sq.Rank()) * size
}
