package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chess-backend/internal/middleware"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/charmbracelet/log"
	"github.com/gofiber/websocket/v2"
)

// wsConn serializes writes; the read loop and broadcasts share the socket.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

type WebSocketController struct {
	gameService *service.GameService
	logger      *log.Logger
}

func NewWebSocketController(gameService *service.GameService, logger *log.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		logger:      logger.With("component", "ws"),
	}
}

// writeJSON sends msg and logs a failed write; the read loop notices the
// broken socket on its own.
func (wsc *WebSocketController) writeJSON(conn service.Conn, playerID string, msg ws.Message) {
	if err := conn.WriteJSON(msg); err != nil {
		wsc.logger.Debug("write failed", "player", playerID, "type", msg.Type, "err", err)
	}
}

// HandleConnection serves one game socket until the client goes away.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	conn := &wsConn{conn: c}

	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		wsc.logger.Warn("register failed", "game", gameID, "player", playerID, "err", err)
		wsc.writeJSON(conn, playerID, ws.ErrorMessage(err.Error()))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, conn)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			wsc.logger.Debug("read ended", "game", gameID, "player", playerID, "err", err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.writeJSON(conn, playerID, ws.ErrorMessage("malformed message"))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.logger.Debug("message rejected", "game", gameID, "player", playerID, "type", msg.Type, "err", err)
			wsc.writeJSON(conn, playerID, ws.ErrorMessage(err.Error()))
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeSelect:
		var p ws.SelectPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("select payload: %w", err)
		}
		_, _, err := wsc.gameService.Select(gameID, playerID, model.Position{Row: p.Row, Col: p.Col})
		return err

	case ws.MessageTypeReset:
		return wsc.gameService.ResetGame(gameID, playerID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// HandleMatchmaking queues the player and holds the socket open until a
// match is found or the client leaves.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	conn := &wsConn{conn: c}
	defer c.Close()

	events := make(chan service.MatchFoundEvent, 1)
	wsc.gameService.RegisterMatchmakingChannel(playerID, events)

	position, err := wsc.gameService.JoinMatchmaking(playerID)
	if errors.Is(err, service.ErrAlreadyQueued) {
		// A reconnect takes over the queued slot of the replaced socket.
		position, err = wsc.gameService.QueuePosition(playerID), nil
	}
	if err != nil {
		wsc.gameService.UnregisterMatchmakingChannel(playerID, events)
		wsc.writeJSON(conn, playerID, ws.ErrorMessage(err.Error()))
		return
	}
	if msg, err := ws.NewMessage(ws.MessageTypeQueued, ws.QueuedPayload{Position: position}); err == nil {
		wsc.writeJSON(conn, playerID, msg)
	}

	// The read side only detects the client leaving.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case event, ok := <-events:
		if !ok {
			// Replaced by a newer matchmaking socket of the same player.
			return
		}
		msg, err := ws.NewMessage(ws.MessageTypeMatchFound, event)
		if err != nil {
			wsc.logger.Error("encode match", "err", err)
			return
		}
		if err := conn.WriteJSON(msg); err != nil {
			wsc.logger.Warn("match not delivered", "player", playerID, "game", event.GameID, "err", err)
		}
	case <-gone:
		// A newer socket of the same player keeps the queued slot.
		if wsc.gameService.UnregisterMatchmakingChannel(playerID, events) {
			wsc.gameService.LeaveMatchmaking(playerID)
			wsc.logger.Debug("left matchmaking", "player", playerID)
		}
	}
}
