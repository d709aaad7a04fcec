package controller

import (
	"github.com/benbeisheim/chess-backend/internal/middleware"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST and websocket API on app. origins limits
// which browser origins may open sockets.
func RegisterRoutes(app *fiber.App, gameService *service.GameService, logger *log.Logger, origins []string) {
	gameController := NewGameController(gameService, logger)
	wsController := NewWebSocketController(gameService, logger)

	wsConfig := websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         origins,
	}
	sockets := app.Group("/ws", middleware.EnsurePlayerID(), middleware.WebSocketUpgrade())
	sockets.Get("/game/:gameId", websocket.New(wsController.HandleConnection, wsConfig))
	sockets.Get("/matchmaking", websocket.New(wsController.HandleMatchmaking, wsConfig))

	app.Post("/api/player/guest", CreateGuest)

	api := app.Group("/api", middleware.EnsurePlayerID())
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Post("/matchmaking/leave", gameController.LeaveMatchmaking)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/board.svg", gameController.BoardImage)
	gameRoutes.Post("/:gameId/select", gameController.Select)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
}
