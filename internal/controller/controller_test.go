package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbeisheim/chess-backend/internal/logging"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type testServer struct {
	app     *fiber.App
	manager *service.GameManager
	service *service.GameService
}

func newTestServer() *testServer {
	logger := logging.Discard()
	gm := service.NewGameManager(logger)
	gs := service.NewGameService(gm, logger)
	app := fiber.New()
	RegisterRoutes(app, gs, logger, []string{"*"})
	return &testServer{app: app, manager: gm, service: gs}
}

// do sends a request as player (none when empty) and decodes a JSON reply
// into out when out is non-nil.
func (s *testServer) do(t *testing.T, method, target, player, body string, out interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if player != "" {
		req.Header.Set("X-Player-ID", player)
	}
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, target, err)
		}
	}
	return resp
}

func (s *testServer) createGame(t *testing.T) string {
	t.Helper()
	var created struct {
		GameID string `json:"game_id"`
	}
	resp := s.do(t, "POST", "/api/game/create", "alice", "", &created)
	if resp.StatusCode != fiber.StatusCreated || created.GameID == "" {
		t.Fatalf("create = %d %q", resp.StatusCode, created.GameID)
	}
	return created.GameID
}
