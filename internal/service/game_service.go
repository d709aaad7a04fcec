package service

import (
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/charmbracelet/log"
)

type GameService struct {
	gameManager *GameManager
	logger      *log.Logger
}

func NewGameService(gameManager *GameManager, logger *log.Logger) *GameService {
	return &GameService{
		gameManager: gameManager,
		logger:      logger,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	return gs.gameManager.CreateGame()
}

// JoinGame seats playerID and pushes the new roster to watchers.
func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	color, err := gs.gameManager.AddPlayerToGame(gameID, playerID)
	if err != nil {
		return "", err
	}
	gs.broadcast(gameID)
	return color, nil
}

func (gs *GameService) JoinMatchmaking(playerID string) (int, error) {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) QueuePosition(playerID string) int {
	return gs.gameManager.QueuePosition(playerID)
}

func (gs *GameService) LeaveMatchmaking(playerID string) bool {
	return gs.gameManager.LeaveMatchmaking(playerID)
}

func (gs *GameService) GetGameState(gameID string) (SessionState, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return SessionState{}, err
	}
	return session.State(), nil
}

// Select applies one click of playerID and broadcasts the resulting state.
func (gs *GameService) Select(gameID string, playerID string, pos model.Position) (model.SelectionResult, SessionState, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.SelectionCleared, SessionState{}, err
	}
	result, st, err := session.Select(playerID, pos)
	if err != nil {
		return model.SelectionCleared, SessionState{}, err
	}
	if result.Committed() {
		gs.logger.Info("move", "game", gameID, "player", playerID, "result", result,
			"from", st.LastMove.From, "to", st.LastMove.To, "check", st.IsCheck)
	}
	gs.broadcast(gameID)
	return result, st, nil
}

func (gs *GameService) ResetGame(gameID string, playerID string) error {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return err
	}
	if err := session.Reset(playerID); err != nil {
		return err
	}
	gs.logger.Info("game reset", "game", gameID, "player", playerID)
	gs.broadcast(gameID)
	return nil
}

// RegisterConnection attaches conn to the game and sends it the current
// state. Spectators may connect; only seated players can select.
func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return err
	}
	session.RegisterConnection(playerID, conn)
	gs.logger.Debug("connection registered", "game", gameID, "player", playerID)
	gs.broadcast(gameID)
	return nil
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Conn) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID, conn)
	gs.logger.Debug("connection unregistered", "game", gameID, "player", playerID)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan MatchFoundEvent) {
	gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string, ch chan MatchFoundEvent) bool {
	return gs.gameManager.UnregisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) broadcast(gameID string) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return
	}
	dropped, err := session.Broadcast()
	if err != nil {
		gs.logger.Error("broadcast failed", "game", gameID, "err", err)
		return
	}
	for _, id := range dropped {
		gs.logger.Warn("dropped connection", "game", gameID, "player", id)
	}
}
