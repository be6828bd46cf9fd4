package model

import "fmt"

// Square identifies one of the 64 board squares. File and Rank are
// zero-based: file 0 is the a-file, rank 0 is rank 1.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// ParseSquare converts algebraic notation ("a1".."h8") into a Square.
// Anything else returns false.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, false
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, true
}

func (sq Square) Valid() bool {
	return sq.File >= 0 && sq.File < 8 && sq.Rank >= 0 && sq.Rank < 8
}

// Offset returns the square displaced by the given file and rank deltas.
// The second result is false when the destination is off the board.
func (sq Square) Offset(deltaFile, deltaRank int) (Square, bool) {
	next := Square{File: sq.File + deltaFile, Rank: sq.Rank + deltaRank}
	return next, next.Valid()
}

func (sq Square) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+sq.File, sq.Rank+1)
}

// AllSquares lists every square on the board, a1 through h8.
func AllSquares() []Square {
	squares := make([]Square, 0, 64)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			squares = append(squares, Square{File: file, Rank: rank})
		}
	}
	return squares
}
