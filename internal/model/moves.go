package model

// Direction and offset tables shared by the move generators. Each entry is
// a (deltaFile, deltaRank) pair.
var (
	orthogonalDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs      = append(append([][2]int{}, orthogonalDirs...), diagonalDirs...)
	knightOffsets  = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// falconDirs returns the falcon's sliding directions: one square ray back
// along the file, two rays diagonally forward. Flips by color.
func falconDirs(c Color) [][2]int {
	if c == ColorWhite {
		return [][2]int{{0, -1}, {1, 1}, {-1, 1}}
	}
	return [][2]int{{0, 1}, {1, -1}, {-1, -1}}
}

// hunterDirs is the mirror image of falconDirs: forward along the file,
// diagonally backward.
func hunterDirs(c Color) [][2]int {
	if c == ColorWhite {
		return [][2]int{{0, 1}, {1, -1}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 1}, {-1, 1}}
}

// ValidMoves returns every square the given piece may move to from the
// given square on the current board. Results are recomputed from the board
// state on every call; nothing is cached.
func ValidMoves(p Piece, from Square, b *Board) []Square {
	switch p.Type {
	case Pawn:
		return pawnMoves(p.Color, from, b)
	case Rook:
		return slideMoves(p.Color, from, b, orthogonalDirs)
	case Bishop:
		return slideMoves(p.Color, from, b, diagonalDirs)
	case Queen:
		return slideMoves(p.Color, from, b, queenDirs)
	case Knight:
		return stepMoves(p.Color, from, b, knightOffsets)
	case King:
		return stepMoves(p.Color, from, b, queenDirs)
	case Falcon:
		return slideMoves(p.Color, from, b, falconDirs(p.Color))
	case Hunter:
		return slideMoves(p.Color, from, b, hunterDirs(p.Color))
	}
	return nil
}

// IsValidMove reports whether to is among the piece's valid moves.
func IsValidMove(p Piece, from, to Square, b *Board) bool {
	for _, sq := range ValidMoves(p, from, b) {
		if sq == to {
			return true
		}
	}
	return false
}

func pawnMoves(c Color, from Square, b *Board) []Square {
	var moves []Square
	forward := 1
	startRank := 1
	if c == ColorBlack {
		forward = -1
		startRank = 6
	}
	if one, ok := from.Offset(0, forward); ok && b.OccupantAt(one).IsEmpty() {
		moves = append(moves, one)
		// Double step: both the intervening and the landing square must
		// be empty.
		if from.Rank == startRank {
			if two, ok := from.Offset(0, 2*forward); ok && b.OccupantAt(two).IsEmpty() {
				moves = append(moves, two)
			}
		}
	}
	// Diagonal steps are captures only.
	for _, deltaFile := range []int{-1, 1} {
		target, ok := from.Offset(deltaFile, forward)
		if !ok {
			continue
		}
		if occ := b.OccupantAt(target); !occ.IsEmpty() && occ.Color != c {
			moves = append(moves, target)
		}
	}
	return moves
}

// slideMoves walks each ray outward until the board edge or the first
// occupied square: an enemy square is included and stops the ray, a
// friendly square stops it without being included.
func slideMoves(c Color, from Square, b *Board, dirs [][2]int) []Square {
	var moves []Square
	for _, dir := range dirs {
		target, ok := from.Offset(dir[0], dir[1])
		for ok {
			occ := b.OccupantAt(target)
			if occ.IsEmpty() {
				moves = append(moves, target)
			} else {
				if occ.Color != c {
					moves = append(moves, target)
				}
				break
			}
			target, ok = target.Offset(dir[0], dir[1])
		}
	}
	return moves
}

func stepMoves(c Color, from Square, b *Board, offsets [][2]int) []Square {
	var moves []Square
	for _, off := range offsets {
		target, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if occ := b.OccupantAt(target); occ.IsEmpty() || occ.Color != c {
			moves = append(moves, target)
		}
	}
	return moves
}
