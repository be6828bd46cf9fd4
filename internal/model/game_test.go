package model

import "testing"

func move(t *testing.T, g *Game, from, to string) bool {
	t.Helper()
	return g.MakeMove(mustSquare(t, from), mustSquare(t, to))
}

func mustMove(t *testing.T, g *Game, from, to string) {
	t.Helper()
	if !move(t, g, from, to) {
		t.Fatalf("move %s-%s refused", from, to)
	}
}

// vacate empties the given squares so placements and custom positions can
// be staged without playing out full games.
func vacate(t *testing.T, g *Game, coords ...string) {
	t.Helper()
	for _, coord := range coords {
		g.board.squares[mustSquare(t, coord)] = Piece{}
	}
}

func recordLoss(g *Game, c Color, t PieceType) {
	g.board.lostMajorPieces[c] = append(g.board.lostMajorPieces[c], Piece{Type: t, Color: c})
}

func TestTurnAlternatesOnAcceptedMoves(t *testing.T) {
	g := NewGame("test")
	if g.Turn() != ColorWhite {
		t.Fatal("game should open on white")
	}
	mustMove(t, g, "e2", "e4")
	if g.Turn() != ColorBlack {
		t.Fatal("turn did not pass to black")
	}
	mustMove(t, g, "e7", "e5")
	if g.Turn() != ColorWhite {
		t.Fatal("turn did not pass back to white")
	}
}

func TestRejectedMoveDoesNotFlipTurn(t *testing.T) {
	g := NewGame("test")
	if move(t, g, "e2", "e5") {
		t.Fatal("illegal pawn move accepted")
	}
	if move(t, g, "e7", "e5") {
		t.Fatal("black moved on white's turn")
	}
	if move(t, g, "e4", "e5") {
		t.Fatal("move from empty square accepted")
	}
	if g.Turn() != ColorWhite {
		t.Fatal("turn flipped on a rejected move")
	}
}

func TestMoveRejectsOffBoardSquares(t *testing.T) {
	g := NewGame("test")
	if g.MakeMove(Square{File: -1, Rank: 0}, Square{File: 0, Rank: 0}) {
		t.Fatal("off-board origin accepted")
	}
	if g.MakeMove(Square{File: 4, Rank: 1}, Square{File: 4, Rank: 8}) {
		t.Fatal("off-board destination accepted")
	}
}

func TestRejectionIsIdempotent(t *testing.T) {
	g := NewGame("test")
	before := g.Snapshot()
	for i := 0; i < 3; i++ {
		if move(t, g, "e2", "e5") {
			t.Fatal("illegal move accepted")
		}
	}
	if g.Turn() != ColorWhite {
		t.Fatal("turn changed")
	}
	after := g.Snapshot()
	for sq, p := range before {
		if after[sq] != p {
			t.Fatalf("board changed at %s", sq.Notation())
		}
	}
}

func TestKingCaptureWinsWithoutSwitchingTurn(t *testing.T) {
	g := NewGame("test")
	// Stage a white queen with an open file to the black king.
	vacate(t, g, "d7", "e8")
	g.board.squares[mustSquare(t, "d4")] = Piece{Type: Queen, Color: ColorWhite}
	g.board.squares[mustSquare(t, "d8")] = Piece{Type: King, Color: ColorBlack}

	mustMove(t, g, "d4", "d8")

	if g.Status() != StatusWhiteWon {
		t.Fatalf("status = %s, want %s", g.Status(), StatusWhiteWon)
	}
	if g.Turn() != ColorWhite {
		t.Fatal("winning move switched the turn")
	}
	if got := len(g.board.LostMajorPieces(ColorBlack)); got != 0 {
		t.Fatalf("king capture recorded as major loss: %d", got)
	}
}

func TestFinishedGameRefusesEverything(t *testing.T) {
	g := NewGame("test")
	g.status = StatusBlackWon

	if move(t, g, "e2", "e4") {
		t.Fatal("move accepted after game end")
	}
	vacate(t, g, "d1")
	recordLoss(g, ColorWhite, Knight)
	if g.PlaceFairyPiece("F", mustSquare(t, "d1")) {
		t.Fatal("placement accepted after game end")
	}
}

func TestFairyPlacementEligibilityGate(t *testing.T) {
	g := NewGame("test")
	vacate(t, g, "b1", "c1", "d1")

	// No major losses yet: first placement refused.
	if g.PlaceFairyPiece("F", mustSquare(t, "d1")) {
		t.Fatal("falcon placed with zero major losses")
	}

	recordLoss(g, ColorWhite, Knight)
	if !g.PlaceFairyPiece("F", mustSquare(t, "d1")) {
		t.Fatal("falcon refused with one major loss")
	}
	if g.Turn() != ColorBlack {
		t.Fatal("placement did not pass the turn")
	}
	if g.board.OccupantAt(mustSquare(t, "d1")).Type != Falcon {
		t.Fatal("falcon not on the board")
	}

	mustMove(t, g, "e7", "e6")

	// Second placement needs a second loss.
	if g.PlaceFairyPiece("H", mustSquare(t, "c1")) {
		t.Fatal("hunter placed with only one major loss")
	}
	recordLoss(g, ColorWhite, Bishop)
	if !g.PlaceFairyPiece("H", mustSquare(t, "c1")) {
		t.Fatal("hunter refused with two major losses")
	}
}

func TestTwoLossesAllowConsecutivePlacements(t *testing.T) {
	g := NewGame("test")
	vacate(t, g, "b1", "c1")
	recordLoss(g, ColorWhite, Knight)
	recordLoss(g, ColorWhite, Rook)

	if !g.PlaceFairyPiece("F", mustSquare(t, "b1")) {
		t.Fatal("first placement refused")
	}
	mustMove(t, g, "e7", "e6")
	if !g.PlaceFairyPiece("H", mustSquare(t, "c1")) {
		t.Fatal("second placement refused despite two prior losses")
	}
}

func TestFairyPlacementRejections(t *testing.T) {
	g := NewGame("test")
	vacate(t, g, "b1", "c1", "d1")
	recordLoss(g, ColorWhite, Knight)
	recordLoss(g, ColorWhite, Bishop)

	if g.PlaceFairyPiece("Q", mustSquare(t, "d1")) {
		t.Fatal("non-fairy symbol accepted")
	}
	if g.PlaceFairyPiece("x", mustSquare(t, "d1")) {
		t.Fatal("unknown symbol accepted")
	}
	if g.PlaceFairyPiece("f", mustSquare(t, "d1")) {
		t.Fatal("black placement accepted on white's turn")
	}
	if g.PlaceFairyPiece("F", mustSquare(t, "d4")) {
		t.Fatal("placement outside home ranks accepted")
	}
	if g.PlaceFairyPiece("F", mustSquare(t, "d8")) {
		t.Fatal("placement on opponent home rank accepted")
	}
	if g.PlaceFairyPiece("F", mustSquare(t, "e1")) {
		t.Fatal("placement on occupied square accepted")
	}

	if !g.PlaceFairyPiece("F", mustSquare(t, "d1")) {
		t.Fatal("valid placement refused")
	}
	mustMove(t, g, "e7", "e6")
	if g.PlaceFairyPiece("F", mustSquare(t, "b1")) {
		t.Fatal("duplicate falcon accepted")
	}
}

func TestFairyEligibilityThroughPlay(t *testing.T) {
	g := NewGame("test")

	// White gives up a knight: Nc3, d5, Nxd5, Qxd5 leaves b1 empty and one
	// white major piece captured.
	mustMove(t, g, "b1", "c3")
	mustMove(t, g, "d7", "d5")
	mustMove(t, g, "c3", "d5")
	mustMove(t, g, "d8", "d5")

	if got := len(g.board.LostMajorPieces(ColorWhite)); got != 1 {
		t.Fatalf("white lost majors = %d, want 1", got)
	}
	if !g.PlaceFairyPiece("F", mustSquare(t, "b1")) {
		t.Fatal("falcon refused after a real knight loss")
	}
	if g.board.OccupantAt(mustSquare(t, "b1")).Type != Falcon {
		t.Fatal("falcon not placed")
	}
	if g.Turn() != ColorBlack {
		t.Fatal("placement did not pass the turn")
	}
}

func TestAddPlayerSeatsWhiteThenBlack(t *testing.T) {
	g := NewGame("test")
	color, err := g.AddPlayer("alice")
	if err != nil || color != ColorWhite {
		t.Fatalf("first seat = %s, %v", color, err)
	}
	color, err = g.AddPlayer("bob")
	if err != nil || color != ColorBlack {
		t.Fatalf("second seat = %s, %v", color, err)
	}
	if _, err := g.AddPlayer("carol"); err == nil {
		t.Fatal("third player seated in a two-player game")
	}
	if !g.IsPlayerInGame("alice") || g.IsPlayerInGame("carol") {
		t.Fatal("seat lookup wrong")
	}
	if g.CanSpectate() {
		t.Fatal("full game should not be joinable")
	}
}

func TestClientStateReflectsGame(t *testing.T) {
	g := NewGame("test")
	mustMove(t, g, "e2", "e4")

	state := g.GetState()
	if state.ToMove != ColorBlack {
		t.Fatalf("toMove = %s", state.ToMove)
	}
	if state.GameState != StatusInProgress {
		t.Fatalf("gameState = %s", state.GameState)
	}
	if len(state.Board) != 64 {
		t.Fatalf("board view has %d squares", len(state.Board))
	}
	if state.Board["e4"] != "P" || state.Board["e2"] != "." {
		t.Fatalf("board view wrong: e4=%q e2=%q", state.Board["e4"], state.Board["e2"])
	}
	if state.LastMove == nil || state.LastMove.To.Notation() != "e4" {
		t.Fatal("lastMove not recorded")
	}
}

func TestOnUpdateObserverSeesEachMutation(t *testing.T) {
	g := NewGame("test")
	var states []ClientState
	g.SetOnUpdate(func(s ClientState) { states = append(states, s) })

	mustMove(t, g, "e2", "e4")
	mustMove(t, g, "e7", "e5")

	if len(states) != 2 {
		t.Fatalf("observer saw %d updates, want 2", len(states))
	}
	if states[0].Board["e4"] != "P" || states[1].Board["e5"] != "p" {
		t.Fatal("observer states out of order")
	}
}
