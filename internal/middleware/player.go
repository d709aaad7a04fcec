package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// PlayerIDKey is the fiber.Ctx local holding the caller's player ID.
const PlayerIDKey = "playerID"

// EnsurePlayerID reads the caller's ID from the X-Player-ID header or the
// playerId query parameter and rejects the request when both are missing.
// The stored ID is a copy; it outlives the request as a seat and queue key.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(PlayerIDKey).(string); ok {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		c.Locals(PlayerIDKey, utils.CopyString(playerID))
		return c.Next()
	}
}

// PlayerID returns the ID stored by EnsurePlayerID.
func PlayerID(c *fiber.Ctx) string {
	id, _ := c.Locals(PlayerIDKey).(string)
	return id
}
