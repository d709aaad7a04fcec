package service

import "github.com/benbeisheim/chess-backend/internal/model"

// ClientPlayer is a seated player as sent to clients.
type ClientPlayer struct {
	ID    string      `json:"name"`
	Color model.Color `json:"color"`
}

// MatchFoundEvent tells a queued player which game they were placed in.
type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  model.Color `json:"color"`
}
