package middleware

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one line per request with its outcome and latency.
func RequestLogger(logger *log.Logger) fiber.Handler {
	logger = logger.With("component", "http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		kv := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).Round(time.Microsecond),
		}
		if id := PlayerID(c); id != "" {
			kv = append(kv, "player", id)
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request", append(kv, "err", err)...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request", kv...)
		default:
			logger.Debug("request", kv...)
		}
		return err
	}
}
