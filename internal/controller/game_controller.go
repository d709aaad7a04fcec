package controller

import (
	"bytes"
	"errors"

	"github.com/benbeisheim/chess-backend/internal/middleware"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/render"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
	logger      *log.Logger
}

func NewGameController(gameService *service.GameService, logger *log.Logger) *GameController {
	return &GameController{gameService: gameService, logger: logger}
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameExists),
		errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrAlreadyQueued),
		errors.Is(err, service.ErrWaitingForOpponent),
		errors.Is(err, service.ErrNotYourTurn):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrPlayerNotInGame):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalidPosition):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (gc *GameController) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		gc.logger.Error("request failed", "path", c.Path(), "err", err)
		msg = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return gc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	color, err := gc.gameService.JoinGame(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(gameState)
}

// Select takes {"row":r,"col":c} and runs one click of the caller.
func (gc *GameController) Select(c *fiber.Ctx) error {
	var pos model.Position
	if err := c.BodyParser(&pos); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must be {\"row\": int, \"col\": int}",
		})
	}

	result, state, err := gc.gameService.Select(c.Params("gameId"), middleware.PlayerID(c), pos)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"result": result.String(),
		"state":  state,
	})
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	if err := gc.gameService.ResetGame(c.Params("gameId"), middleware.PlayerID(c)); err != nil {
		return gc.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) BoardImage(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	var buf bytes.Buffer
	if err := render.Board(&buf, gameState.GameState); err != nil {
		return gc.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(buf.Bytes())
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	position, err := gc.gameService.JoinMatchmaking(middleware.PlayerID(c))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"status":   "queued",
		"position": position,
	})
}

func (gc *GameController) LeaveMatchmaking(c *fiber.Ctx) error {
	if !gc.gameService.LeaveMatchmaking(middleware.PlayerID(c)) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "player is not queued",
		})
	}
	return c.JSON(fiber.Map{
		"status": "left",
	})
}
