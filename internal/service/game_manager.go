package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/fhchess-backend/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GameManager keeps every running game behind one registry. Cross-game
// operations are independent: the registry map is guarded by an RWMutex
// and each game serializes its own moves with its own mutex.
type GameManager struct {
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan string
	mu               sync.RWMutex
}

func NewGameManager() *GameManager {
	gm := &GameManager{
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
	}

	go gm.processMatchmaking()

	return gm
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	gm.games[gameID] = model.NewGame(gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}

	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}

	return game.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.ClientState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.ClientState{}, err
	}

	return game.GetState(), nil
}

// MakeMove parses the request squares and applies the move. The engine
// reports every rejection as a bare refusal, so the only error detail
// available here is which stage refused.
func (gm *GameManager) MakeMove(gameID string, playerID string, move model.MoveRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	from, ok := model.ParseSquare(move.From)
	if !ok {
		return errors.New("invalid origin square")
	}
	to, ok := model.ParseSquare(move.To)
	if !ok {
		return errors.New("invalid destination square")
	}

	if !game.MakeMove(from, to) {
		return errors.New("move refused")
	}
	return nil
}

func (gm *GameManager) PlaceFairyPiece(gameID string, playerID string, placement model.PlaceRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	sq, ok := model.ParseSquare(placement.Square)
	if !ok {
		return errors.New("invalid placement square")
	}

	if !game.PlaceFairyPiece(placement.Piece, sq) {
		return errors.New("placement refused")
	}
	return nil
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	// Replace any stale channel for this player.
	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}

	gm.matchingChannels[playerID] = ch
	return nil
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	// The channel is closed by whoever created it.
	delete(gm.matchingChannels, playerID)
}

// processMatchmaking pairs the two longest-waiting players into a fresh
// game once per tick and notifies them over their matchmaking channels.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if gm.queue.Size() < 2 {
			continue
		}
		player1, player2 := gm.queue.GetNextPair()

		gameID := uuid.New().String()
		game := model.NewGame(gameID)

		p1Color, err := game.AddPlayer(player1.ID)
		if err != nil {
			log.Printf("matchmaking: seating player %s: %v", player1.ID, err)
			continue
		}
		p2Color, err := game.AddPlayer(player2.ID)
		if err != nil {
			log.Printf("matchmaking: seating player %s: %v", player2.ID, err)
			continue
		}

		gm.mu.Lock()
		gm.games[gameID] = game
		gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
		gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
		gm.mu.Unlock()
	}
}

// notifyMatch sends the event to the player's matchmaking channel and
// retires the channel. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("matchmaking: marshal event for %s: %v", playerID, err)
		return
	}
	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Printf("matchmaking: player %s not listening", playerID)
	}
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	game.UnregisterConnection(playerID)
}
