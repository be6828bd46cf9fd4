package model

// Board owns the square occupancy mapping plus the bookkeeping that gates
// fairy-piece entry: the major pieces each color has lost and the fairy
// kinds each color has already placed.
type Board struct {
	squares           map[Square]Piece
	lostMajorPieces   map[Color][]Piece
	fairyPiecesPlaced map[Color][]PieceType
	onChange          func()
}

var backRankLayout = []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard sets up the standard chess starting position. Every one of the
// 64 squares is present in the mapping; empty squares hold the zero Piece.
func NewBoard() *Board {
	b := &Board{
		squares:           make(map[Square]Piece, 64),
		lostMajorPieces:   map[Color][]Piece{ColorWhite: {}, ColorBlack: {}},
		fairyPiecesPlaced: map[Color][]PieceType{ColorWhite: {}, ColorBlack: {}},
	}
	for _, sq := range AllSquares() {
		b.squares[sq] = Piece{}
	}
	for file, t := range backRankLayout {
		b.squares[Square{File: file, Rank: 0}] = Piece{Type: t, Color: ColorWhite}
		b.squares[Square{File: file, Rank: 7}] = Piece{Type: t, Color: ColorBlack}
	}
	for file := 0; file < 8; file++ {
		b.squares[Square{File: file, Rank: 1}] = Piece{Type: Pawn, Color: ColorWhite}
		b.squares[Square{File: file, Rank: 6}] = Piece{Type: Pawn, Color: ColorBlack}
	}
	return b
}

// SetOnChange registers the observer invoked after every board mutation.
// The game controller uses it to push state to renderers and sockets.
func (b *Board) SetOnChange(fn func()) {
	b.onChange = fn
}

func (b *Board) OccupantAt(sq Square) Piece {
	return b.squares[sq]
}

// ApplyMove moves the piece to its destination, recording the capture when
// the destination is occupied. A nil from means a fairy-piece placement
// with no origin square to clear. Captured kings are not recorded; the
// game controller detects them before applying the move. Legality is the
// caller's responsibility.
func (b *Board) ApplyMove(p Piece, from *Square, to Square) {
	if captured := b.squares[to]; captured.IsMajor() {
		b.lostMajorPieces[captured.Color] = append(b.lostMajorPieces[captured.Color], captured)
	}
	if from != nil {
		b.squares[*from] = Piece{}
	}
	b.squares[to] = p
	if b.onChange != nil {
		b.onChange()
	}
}

// LostMajorPieces returns the major pieces the given color has lost, in
// capture order.
func (b *Board) LostMajorPieces(c Color) []Piece {
	return b.lostMajorPieces[c]
}

// RegisterFairyPlacement records that the color has placed the given fairy
// kind. Uniqueness has already been validated by the caller.
func (b *Board) RegisterFairyPlacement(t PieceType, c Color) {
	b.fairyPiecesPlaced[c] = append(b.fairyPiecesPlaced[c], t)
}

func (b *Board) FairyPiecesPlaced(c Color) []PieceType {
	return b.fairyPiecesPlaced[c]
}

// OpponentOccupiedSquares returns every square held by the opposite color.
func (b *Board) OpponentOccupiedSquares(c Color) map[Square]Piece {
	occupied := make(map[Square]Piece)
	for sq, p := range b.squares {
		if !p.IsEmpty() && p.Color != c {
			occupied[sq] = p
		}
	}
	return occupied
}

// Snapshot returns a read-only copy of the occupancy mapping.
func (b *Board) Snapshot() map[Square]Piece {
	snapshot := make(map[Square]Piece, len(b.squares))
	for sq, p := range b.squares {
		snapshot[sq] = p
	}
	return snapshot
}
