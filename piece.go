package chessbits

// Color represents the color of a chess piece.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposite color. NoColor stays NoColor.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements fmt.Stringer: "w", "b" or "-".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns "white", "black" or "no color".
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "no color"
}

// PieceType is the colorless type of a chess piece.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeNames = [NumOfPieces + 1]string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lower case name of the type ("" for NoPieceType).
func (p PieceType) String() string {
	if p < NoPieceType || p > King {
		return ""
	}
	return pieceTypeNames[p]
}

// Piece is the identity tag of what occupies a square: NoPiece or one of the
// twelve colored pieces. It is used for reporting only, never for board logic.
type Piece int8

const (
	NoPiece Piece = iota

	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing

	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// NumOfPieceIdentities is the number of Piece values including NoPiece.
const NumOfPieceIdentities = 1 + NumOfColors*NumOfPieces

// The tables below are indexed by Piece. Their fixed length makes adding an
// identity a compile error until every table is extended.
var (
	pieceGlyphs = [NumOfPieceIdentities]string{
		" ",
		"♙", "♘", "♗", "♖", "♕", "♔",
		"♟", "♞", "♝", "♜", "♛", "♚",
	}
	pieceFEN = [NumOfPieceIdentities]string{
		"",
		"P", "N", "B", "R", "Q", "K",
		"p", "n", "b", "r", "q", "k",
	}
)

// AllPieces lists the twelve colored pieces, white first, in probe order.
var AllPieces = [NumOfColors * NumOfPieces]Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

// NewPiece returns the piece of the given type and color, or NoPiece.
func NewPiece(t PieceType, c Color) Piece {
	if t < Pawn || t > King {
		return NoPiece
	}
	switch c {
	case White:
		return Piece(t)
	case Black:
		return Piece(int8(t) + NumOfPieces)
	}
	return NoPiece
}

func (p Piece) valid() bool { return p > NoPiece && p <= BlackKing }

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	if !p.valid() {
		return NoPieceType
	}
	return PieceType((int8(p)-1)%NumOfPieces + 1)
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	switch {
	case p >= WhitePawn && p <= WhiteKing:
		return White
	case p >= BlackPawn && p <= BlackKing:
		return Black
	}
	return NoColor
}

// String returns the Unicode glyph of the piece, a blank for NoPiece.
func (p Piece) String() string {
	if p < NoPiece || p > BlackKing {
		return " "
	}
	return pieceGlyphs[p]
}

// Name returns the full name of the piece, e.g. "white queen" or "no piece".
func (p Piece) Name() string {
	if !p.valid() {
		return "no piece"
	}
	return p.Color().Name() + " " + p.Type().String()
}

// FEN returns the FEN letter of the piece (upper case for white), "" for NoPiece.
func (p Piece) FEN() string {
	if p < NoPiece || p > BlackKing {
		return ""
	}
	return pieceFEN[p]
}

// --- Mappings ---

// IndexToColor converts internal index (0/1) back to Color.
func IndexToColor(idx int) Color {
	if idx == BlackIdx {
		return Black
	}
	return White
}

// ColorToIndex maps Color to internal index (White=0, Black=1).
func ColorToIndex(c Color) int {
	if c == Black {
		return BlackIdx
	}
	// Default to White for White or NoColor.
	return WhiteIdx
}

// PieceTypeToIndex maps PieceType to internal index (Pawn=0..King=5). Returns -1 for invalid.
func PieceTypeToIndex(pt PieceType) int {
	if pt < Pawn || pt > King {
		return -1
	}
	return int(pt) - 1
}

// IndexToPieceType maps internal piece type index (0..5) back to PieceType.
func IndexToPieceType(idx int) PieceType {
	if idx < PawnIdx || idx > KingIdx {
		return NoPieceType
	}
	return PieceType(idx + 1)
}
