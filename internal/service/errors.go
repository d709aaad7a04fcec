package service

import "errors"

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrGameExists         = errors.New("game already exists")
	ErrGameFull           = errors.New("game is full")
	ErrWaitingForOpponent = errors.New("waiting for an opponent")
	ErrPlayerNotInGame    = errors.New("player is not seated in this game")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrAlreadyQueued      = errors.New("player already in queue")
	ErrInvalidPosition    = errors.New("position is off the board")
)
