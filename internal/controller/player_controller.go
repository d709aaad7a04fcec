package controller

import (
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NewGuestID returns a readable, practically unique player ID such as
// "brave-otter-1f3a9c02".
func NewGuestID() string {
	return petname.Generate(2, "-") + "-" + uuid.New().String()[:8]
}

// CreateGuest hands out a player ID for clients that have none yet.
func CreateGuest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"playerId": NewGuestID(),
	})
}
