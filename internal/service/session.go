package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/ws"
)

// Conn is the write side of a client connection. Implementations must be
// safe for concurrent use.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Session is one game between two seats and the connections watching it.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.Mutex
	game  *model.Game
	seats map[model.Color]string
	conns map[string]Conn
}

// SessionState is the JSON view of a session sent to clients.
type SessionState struct {
	model.GameState
	GameID  string         `json:"gameId"`
	Players []ClientPlayer `json:"players"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		game:      model.NewGame(),
		seats:     make(map[model.Color]string),
		conns:     make(map[string]Conn),
	}
}

// AddPlayer seats playerID, white first. A player already seated keeps
// their color.
func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.colorOf(playerID); ok {
		return c, nil
	}
	for _, c := range []model.Color{model.White, model.Black} {
		if _, taken := s.seats[c]; !taken {
			s.seats[c] = playerID
			return c, nil
		}
	}
	return "", fmt.Errorf("game %s: %w", s.ID, ErrGameFull)
}

func (s *Session) ColorOf(playerID string) (model.Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorOf(playerID)
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	for c, id := range s.seats {
		if id == playerID {
			return c, true
		}
	}
	return "", false
}

// Select feeds a click from playerID into the game and returns the state
// right after it. Only the player holding the side to move may select, and
// only once both seats are taken.
func (s *Session) Select(playerID string, pos model.Position) (model.SelectionResult, SessionState, error) {
	if !pos.Valid() {
		return model.SelectionCleared, SessionState{}, fmt.Errorf("select %v: %w", pos, ErrInvalidPosition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	color, ok := s.colorOf(playerID)
	if !ok {
		return model.SelectionCleared, SessionState{}, fmt.Errorf("game %s: %w", s.ID, ErrPlayerNotInGame)
	}
	if len(s.seats) < 2 {
		return model.SelectionCleared, SessionState{}, fmt.Errorf("game %s: %w", s.ID, ErrWaitingForOpponent)
	}
	if color != s.game.CurrentPlayer() {
		return model.SelectionCleared, SessionState{}, fmt.Errorf("game %s: %s to move: %w", s.ID, s.game.CurrentPlayer(), ErrNotYourTurn)
	}
	result := s.game.HandleSelection(pos)
	return result, s.state(), nil
}

// Reset restarts the game from the opening position. Seats are kept.
func (s *Session) Reset(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.colorOf(playerID); !ok {
		return fmt.Errorf("game %s: %w", s.ID, ErrPlayerNotInGame)
	}
	s.game.Reset()
	return nil
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() SessionState {
	st := SessionState{
		GameState: s.game.State(),
		GameID:    s.ID,
		Players:   []ClientPlayer{},
	}
	for _, c := range []model.Color{model.White, model.Black} {
		if id, ok := s.seats[c]; ok {
			st.Players = append(st.Players, ClientPlayer{ID: id, Color: c})
		}
	}
	return st
}

// RegisterConnection attaches conn for playerID, replacing and closing any
// previous connection of the same player.
func (s *Session) RegisterConnection(playerID string, conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.conns[playerID]; ok && old != conn {
		old.Close()
	}
	s.conns[playerID] = conn
}

// UnregisterConnection detaches conn. A newer connection registered for the
// same player stays.
func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conns[playerID] == conn {
		delete(s.conns, playerID)
	}
}

func (s *Session) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Broadcast sends the current state to every connection. Connections that
// fail to accept the write are closed and dropped; their player IDs are
// returned.
func (s *Session) Broadcast() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.state())
	if err != nil {
		return nil, err
	}

	var dropped []string
	for id, conn := range s.conns {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(s.conns, id)
			dropped = append(dropped, id)
		}
	}
	return dropped, nil
}
