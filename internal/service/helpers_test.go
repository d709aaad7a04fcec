package service

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/benbeisheim/chess-backend/internal/logging"
	"github.com/benbeisheim/chess-backend/internal/ws"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []ws.Message
	failing  bool
	closed   bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, v.(ws.Message))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// lastState decodes the most recent gameState message.
func (c *fakeConn) lastState(t *testing.T) SessionState {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Type != ws.MessageTypeGameState {
			continue
		}
		var st SessionState
		if err := json.Unmarshal(c.messages[i].Payload, &st); err != nil {
			t.Fatalf("decode state: %v", err)
		}
		return st
	}
	t.Fatal("no gameState message received")
	return SessionState{}
}

func (c *fakeConn) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func newTestManager() *GameManager {
	return NewGameManager(logging.Discard())
}

// sequentialIDs makes game IDs predictable.
func sequentialIDs(gm *GameManager, ids ...string) {
	next := 0
	gm.newID = func() string {
		id := ids[next]
		next++
		return id
	}
}
