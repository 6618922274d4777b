// Command chessbits prints a board, the piece on one square and, optionally,
// the file and rank masks as binary grids.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/0x5844/chessbits"
	"github.com/0x5844/chessbits/convert"
	"github.com/0x5844/chessbits/render"
)

func main() {
	log.SetPrefix("chessbits: ")
	log.SetFlags(0)

	fen := flag.String("fen", "", "FEN string (defaults to the initial position)")
	square := flag.String("square", "g8", "Square whose piece is reported")
	svgPath := flag.String("svg", "", "Write an SVG image of the board to this file")
	flipped := flag.Bool("flip", false, "Draw the SVG from Black's side")
	masks := flag.Bool("masks", true, "Print the file and rank masks")
	flag.Parse()

	pos := chessbits.NewPosition()
	if *fen != "" {
		var err error
		if pos, err = convert.ParseFEN(*fen); err != nil {
			log.Fatalf("%v", err)
		}
	}
	sq, err := chessbits.ParseSquare(*square)
	if err != nil {
		log.Fatalf("-square %q: %v", *square, err)
	}

	fmt.Print(pos.Board.Draw())
	fmt.Printf("%s: %s\n", sq, pos.Board.Piece(sq).Name())

	if *masks {
		for f := chessbits.FileA; f <= chessbits.FileH; f++ {
			fmt.Printf("%s :\n%s", f, chessbits.BBFile(f).Dump())
		}
		for r := chessbits.Rank1; r <= chessbits.Rank8; r++ {
			fmt.Printf("%s :\n%s", r, chessbits.BBRank(r).Dump())
		}
	}

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			log.Fatalf("creating svg: %v", err)
		}
		render.Board(f, pos.Board, render.Options{Flipped: *flipped})
		if err := f.Close(); err != nil {
			log.Fatalf("writing svg: %v", err)
		}
	}
}
