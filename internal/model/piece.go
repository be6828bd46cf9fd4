package model

type Color string

const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
)

func (c Color) Opponent() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

type PieceType string

const (
	Pawn   PieceType = "pawn"
	Rook   PieceType = "rook"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Queen  PieceType = "queen"
	King   PieceType = "king"
	Falcon PieceType = "falcon"
	Hunter PieceType = "hunter"
)

// Piece is an occupant of a board square. The zero value is the empty
// square; position is never stored on the piece.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

// IsMajor reports whether losing this piece counts toward fairy-piece
// eligibility. Pawns and kings are excluded.
func (p Piece) IsMajor() bool {
	switch p.Type {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

var pieceLetters = map[PieceType]string{
	Pawn:   "P",
	Rook:   "R",
	Knight: "N",
	Bishop: "B",
	Queen:  "Q",
	King:   "K",
	Falcon: "F",
	Hunter: "H",
}

// Symbol returns the one-letter piece symbol: uppercase for white,
// lowercase for black, "." for an empty square.
func (p Piece) Symbol() string {
	letter, ok := pieceLetters[p.Type]
	if !ok {
		return "."
	}
	if p.Color == ColorBlack {
		return string(letter[0] + 'a' - 'A')
	}
	return letter
}

var pieceGlyphs = map[string]string{
	"K": "♔", "Q": "♕", "R": "♖", "B": "♗", "N": "♘", "P": "♙",
	"k": "♚", "q": "♛", "r": "♜", "b": "♝", "n": "♞", "p": "♟",
	"F": "F", "f": "f", "H": "H", "h": "h",
}

// Glyph returns the Unicode figure for rendering. Falcons and hunters have
// no Unicode chess glyph and render as letters.
func (p Piece) Glyph() string {
	if glyph, ok := pieceGlyphs[p.Symbol()]; ok {
		return glyph
	}
	return " "
}

// PieceFromSymbol resolves a one-letter symbol into a piece. Uppercase is
// white, lowercase is black.
func PieceFromSymbol(symbol string) (Piece, bool) {
	if len(symbol) != 1 {
		return Piece{}, false
	}
	letter := symbol
	color := ColorWhite
	if symbol[0] >= 'a' && symbol[0] <= 'z' {
		letter = string(symbol[0] - ('a' - 'A'))
		color = ColorBlack
	}
	for t, l := range pieceLetters {
		if l == letter {
			return Piece{Type: t, Color: color}, true
		}
	}
	return Piece{}, false
}

// FairyPieceFromSymbol resolves 'F', 'H', 'f' or 'h'. Only falcons and
// hunters may enter the game by placement.
func FairyPieceFromSymbol(symbol string) (Piece, bool) {
	p, ok := PieceFromSymbol(symbol)
	if !ok || (p.Type != Falcon && p.Type != Hunter) {
		return Piece{}, false
	}
	return p, true
}
