package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type GameManager struct {
	games            map[string]*Session
	queue            *Queue
	matchingChannels map[string]chan MatchFoundEvent
	mu               sync.RWMutex
	logger           *log.Logger
	newID            func() string
}

func NewGameManager(logger *log.Logger) *GameManager {
	return &GameManager{
		games:            make(map[string]*Session),
		queue:            NewQueue(),
		matchingChannels: make(map[string]chan MatchFoundEvent),
		logger:           logger.With("component", "games"),
		newID:            func() string { return uuid.New().String() },
	}
}

// RegisterMatchmakingChannel makes ch the delivery channel for playerID's
// match. A channel registered earlier for the same player is closed. The
// manager never blocks on ch, so it should be buffered.
func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan MatchFoundEvent) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, ok := gm.matchingChannels[playerID]; ok && existing != ch {
		gm.logger.Debug("replacing matchmaking channel", "player", playerID)
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
}

// UnregisterMatchmakingChannel forgets ch without closing it; the registrant
// owns it. It reports false when ch was already replaced or used.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string, ch chan MatchFoundEvent) bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if gm.matchingChannels[playerID] != ch {
		return false
	}
	delete(gm.matchingChannels, playerID)
	return true
}

// Run pairs queued players every interval until ctx is done.
func (gm *GameManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for {
				if _, ok := gm.MatchOnce(); !ok {
					break
				}
			}
		}
	}
}

// MatchOnce pairs the two longest-waiting players into a new game, white to
// the first. It reports false when fewer than two players are queued.
func (gm *GameManager) MatchOnce() (string, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	first, second, ok := gm.queue.NextPair()
	if !ok {
		return "", false
	}

	gameID := gm.newID()
	session := NewSession(gameID)
	gm.games[gameID] = session

	for _, p := range []QueuedPlayer{first, second} {
		color, err := session.AddPlayer(p.PlayerID)
		if err != nil {
			// A fresh session always has two free seats.
			panic(err)
		}
		event := MatchFoundEvent{GameID: gameID, Color: color}
		if !gm.notify(p.PlayerID, event) {
			gm.logger.Warn("player has no matchmaking listener", "player", p.PlayerID, "game", gameID)
		}
	}
	gm.logger.Info("match found", "game", gameID, "white", first.PlayerID, "black", second.PlayerID,
		"waited", time.Since(first.JoinedAt).Round(time.Millisecond))
	return gameID, true
}

// notify delivers event and retires the player's channel. Caller holds mu.
func (gm *GameManager) notify(playerID string, event MatchFoundEvent) bool {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return false
	}
	delete(gm.matchingChannels, playerID)
	select {
	case ch <- event:
		close(ch)
		return true
	default:
		close(ch)
		return false
	}
}

// CreateGame opens an empty session under a fresh ID.
func (gm *GameManager) CreateGame() (string, error) {
	gameID := gm.newID()
	if err := gm.createGame(gameID); err != nil {
		return "", err
	}
	gm.logger.Info("game created", "game", gameID)
	return gameID, nil
}

func (gm *GameManager) createGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("game %s: %w", gameID, ErrGameExists)
	}
	gm.games[gameID] = NewSession(gameID)
	return nil
}

func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	return session, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return "", err
	}
	color, err := session.AddPlayer(playerID)
	if err != nil {
		return "", err
	}
	gm.logger.Info("player joined", "game", gameID, "player", playerID, "color", color)
	return color, nil
}

// JoinMatchmaking queues playerID and returns its place in line.
func (gm *GameManager) JoinMatchmaking(playerID string) (int, error) {
	if err := gm.queue.AddPlayer(playerID); err != nil {
		return 0, err
	}
	pos := gm.queue.Position(playerID)
	gm.logger.Debug("player queued", "player", playerID, "position", pos)
	return pos, nil
}

// QueuePosition returns playerID's 1-based place in line, or 0 when the
// player is not queued.
func (gm *GameManager) QueuePosition(playerID string) int {
	return gm.queue.Position(playerID)
}

func (gm *GameManager) LeaveMatchmaking(playerID string) bool {
	return gm.queue.Remove(playerID)
}

func (gm *GameManager) QueueSize() int {
	return gm.queue.Size()
}
