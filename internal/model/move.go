package model

// MoveRequest is a move submitted by a client, in algebraic notation.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PlaceRequest is a fairy-piece placement submitted by a client. Piece is
// the one-letter symbol: 'F'/'H' for white, 'f'/'h' for black.
type PlaceRequest struct {
	Piece  string `json:"piece"`
	Square string `json:"square"`
}

// MoveRecord describes the last accepted move for clients. From is nil for
// a fairy-piece placement.
type MoveRecord struct {
	From *Square `json:"from"`
	To   Square  `json:"to"`
}

// MatchFoundEvent notifies a queued player that matchmaking paired them.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  Color  `json:"color"`
}
