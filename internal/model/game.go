package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/benbeisheim/fhchess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type GameStatus string

const (
	StatusInProgress GameStatus = "UNFINISHED"
	StatusWhiteWon   GameStatus = "WHITE_WON"
	StatusBlackWon   GameStatus = "BLACK_WON"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

// Game orchestrates one Falcon-Hunter Chess game: it owns the turn and the
// game status, holds the board for the game's lifetime, and pushes state
// to observers after every successful mutation. All public operations are
// serialized by one mutex per game.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	turn        Color
	status      GameStatus
	players     Players
	whiteClock  *Clock
	blackClock  *Clock
	lastMove    *MoveRecord
	onUpdate    func(ClientState)
	connections *GameConnections
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// ClientState is the full game view broadcast to clients after every
// successful move or placement. Board maps square notation to the piece
// symbol on it ("." when empty).
type ClientState struct {
	Board             map[string]string `json:"board"`
	ToMove            Color             `json:"toMove"`
	GameState         GameStatus        `json:"gameState"`
	LostMajorPieces   CapturedPieces    `json:"lostMajorPieces"`
	FairyPiecesPlaced FairyPlacements   `json:"fairyPiecesPlaced"`
	LastMove          *MoveRecord       `json:"lastMove"`
	Players           Players           `json:"players"`
}

type CapturedPieces struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

type FairyPlacements struct {
	White []PieceType `json:"white"`
	Black []PieceType `json:"black"`
}

func NewGame(id string) *Game {
	g := &Game{
		ID:          id,
		board:       NewBoard(),
		turn:        ColorWhite,
		status:      StatusInProgress,
		connections: NewGameConnections(),
		whiteClock:  NewClock(),
		blackClock:  NewClock(),
	}
	g.board.SetOnChange(g.handleBoardChange)
	g.whiteClock.Start()
	return g
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// SetOnUpdate registers a callback invoked synchronously with the new
// client state after every board mutation. The terminal front end uses it
// to redraw.
func (g *Game) SetOnUpdate(fn func(ClientState)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onUpdate = fn
}

func (g *Game) Turn() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

func (g *Game) Status() GameStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Snapshot returns a read-only copy of the board occupancy.
func (g *Game) Snapshot() map[Square]Piece {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Snapshot()
}

func (g *Game) GetState() ClientState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clientState()
}

// MakeMove attempts to move the piece on from to to for the player whose
// turn it is. Every rejection collapses to false: bad squares, a finished
// game, an empty origin, moving out of turn, or an illegal path. Capturing
// the opposing king wins the game without switching the turn.
func (g *Game) MakeMove(from, to Square) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.makeMove(from, to)
}

func (g *Game) makeMove(from, to Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if g.status != StatusInProgress {
		return false
	}
	mover := g.board.OccupantAt(from)
	if mover.IsEmpty() || mover.Color != g.turn {
		return false
	}
	if !IsValidMove(mover, from, to, g.board) {
		return false
	}

	origin := from
	if g.board.OccupantAt(to).Type == King {
		// King capture ends the game; the turn does not switch.
		if mover.Color == ColorWhite {
			g.status = StatusWhiteWon
		} else {
			g.status = StatusBlackWon
		}
		g.whiteClock.Stop()
		g.blackClock.Stop()
		g.lastMove = &MoveRecord{From: &origin, To: to}
		g.board.ApplyMove(mover, &origin, to)
		return true
	}

	g.switchTurn()
	g.punchClocks()
	g.lastMove = &MoveRecord{From: &origin, To: to}
	g.board.ApplyMove(mover, &origin, to)
	return true
}

// PlaceFairyPiece attempts to enter a falcon or hunter from off the board.
// symbol is 'F'/'H' for white, 'f'/'h' for black. The square must be empty
// and on the mover's two home ranks, the kind must not have been placed
// before, and the color must have lost at least one major piece for its
// first placement and at least two in total for its second.
func (g *Game) PlaceFairyPiece(symbol string, sq Square) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.placeFairyPiece(symbol, sq)
}

func (g *Game) placeFairyPiece(symbol string, sq Square) bool {
	if !sq.Valid() {
		return false
	}
	if g.status != StatusInProgress {
		return false
	}
	p, ok := FairyPieceFromSymbol(symbol)
	if !ok {
		return false
	}
	if p.Color != g.turn {
		return false
	}
	if !onHomeRanks(p.Color, sq) {
		return false
	}
	if !g.board.OccupantAt(sq).IsEmpty() {
		return false
	}
	placed := g.board.FairyPiecesPlaced(p.Color)
	for _, t := range placed {
		if t == p.Type {
			return false
		}
	}
	lost := len(g.board.LostMajorPieces(p.Color))
	if lost < 1 || (len(placed) >= 1 && lost < 2) {
		return false
	}

	g.switchTurn()
	g.punchClocks()
	g.lastMove = &MoveRecord{To: sq}
	g.board.RegisterFairyPlacement(p.Type, p.Color)
	g.board.ApplyMove(p, nil, sq)
	return true
}

func onHomeRanks(c Color, sq Square) bool {
	if c == ColorWhite {
		return sq.Rank <= 1
	}
	return sq.Rank >= 6
}

func (g *Game) switchTurn() {
	if g.turn == ColorWhite {
		g.turn = ColorBlack
	} else {
		g.turn = ColorWhite
	}
}

// punchClocks stops the clock of the player who just moved and starts the
// clock of the player now to move. Called after switchTurn.
func (g *Game) punchClocks() {
	if g.turn == ColorWhite {
		g.blackClock.Stop()
		g.whiteClock.Start()
	} else {
		g.whiteClock.Stop()
		g.blackClock.Start()
	}
}

// handleBoardChange is the board's mutation observer. It runs with the
// game mutex held, so it assembles the state synchronously and hands the
// socket broadcast off to a goroutine.
func (g *Game) handleBoardChange() {
	state := g.clientState()
	if g.onUpdate != nil {
		g.onUpdate(state)
	}
	go g.connections.broadcast(state)
}

func (g *Game) clientState() ClientState {
	boardView := make(map[string]string, 64)
	for sq, p := range g.board.Snapshot() {
		boardView[sq.Notation()] = p.Symbol()
	}
	state := ClientState{
		Board:     boardView,
		ToMove:    g.turn,
		GameState: g.status,
		LostMajorPieces: CapturedPieces{
			White: pieceSymbols(g.board.LostMajorPieces(ColorWhite)),
			Black: pieceSymbols(g.board.LostMajorPieces(ColorBlack)),
		},
		FairyPiecesPlaced: FairyPlacements{
			White: append([]PieceType{}, g.board.FairyPiecesPlaced(ColorWhite)...),
			Black: append([]PieceType{}, g.board.FairyPiecesPlaced(ColorBlack)...),
		},
		LastMove: g.lastMove,
		Players:  g.players,
	}
	state.Players.White.TimeUsed = int(g.whiteClock.Elapsed().Milliseconds() / 100)
	state.Players.Black.TimeUsed = int(g.blackClock.Elapsed().Milliseconds() / 100)
	return state
}

func pieceSymbols(pieces []Piece) []string {
	symbols := make([]string, 0, len(pieces))
	for _, p := range pieces {
		symbols = append(symbols, p.Symbol())
	}
	return symbols
}

func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{ID: playerID, Color: ColorWhite}
		return ColorWhite, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{ID: playerID, Color: ColorBlack}
		return ColorBlack, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.players.White.ID != "" && g.players.White.ID == playerID {
		return true
	}
	if g.players.Black.ID != "" && g.players.Black.ID == playerID {
		return true
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection and reject the new one.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	// Send the joining client the current state.
	state := g.GetState()
	go func() {
		if err := writeState(conn, state); err != nil {
			log.Printf("failed to send state to player %s: %v", playerID, err)
		}
	}()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

// broadcast pushes the given state to every registered connection,
// dropping connections that fail to write.
func (gc *GameConnections) broadcast(state ClientState) {
	gc.mu.RLock()
	active := make(map[string]*websocket.Conn, len(gc.connections))
	for playerID, conn := range gc.connections {
		active[playerID] = conn
	}
	gc.mu.RUnlock()

	var failed []string
	for playerID, conn := range active {
		if err := writeState(conn, state); err != nil {
			log.Printf("failed to send state to player %s: %v", playerID, err)
			failed = append(failed, playerID)
		}
	}

	if len(failed) > 0 {
		gc.mu.Lock()
		for _, playerID := range failed {
			delete(gc.connections, playerID)
		}
		gc.mu.Unlock()
	}
}

func writeState(conn *websocket.Conn, state ClientState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return conn.WriteJSON(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	})
}
