package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/benbeisheim/chess-backend/internal/config"
	"github.com/benbeisheim/chess-backend/internal/controller"
	"github.com/benbeisheim/chess-backend/internal/logging"
	"github.com/benbeisheim/chess-backend/internal/middleware"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}
	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	app := fiber.New(fiber.Config{
		AppName:               "chess-backend",
		DisableStartupMessage: true,
		Immutable:             true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: !containsWildcard(cfg.AllowedOrigins),
	}))
	app.Use(middleware.RequestLogger(logger))

	gameManager := service.NewGameManager(logger)
	gameService := service.NewGameService(gameManager, logger)
	controller.RegisterRoutes(app, gameService, logger, cfg.AllowedOrigins)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go gameManager.Run(ctx, cfg.MatchmakingInterval)

	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "origins", cfg.AllowedOrigins)
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Fatal("shutdown", "err", err)
	}
}

// Fiber refuses credentials together with a wildcard origin.
func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
