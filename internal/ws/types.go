package ws

import (
	"encoding/json"
	"fmt"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// Client to server.
	MessageTypeSelect MessageType = "select"
	MessageTypeReset  MessageType = "reset"

	// Server to client.
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeMatchFound MessageType = "matchFound"
	MessageTypeQueued     MessageType = "queued"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SelectPayload is the board cell a player clicked.
type SelectPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

type QueuedPayload struct {
	Position int `json:"position"`
}

// NewMessage wraps payload in a typed envelope.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("ws: encode %s payload: %w", t, err)
	}
	return Message{Type: t, Payload: raw}, nil
}

// ErrorMessage builds an error envelope; it cannot fail.
func ErrorMessage(msg string) Message {
	m, _ := NewMessage(MessageTypeError, ErrorPayload{Error: msg})
	return m
}
