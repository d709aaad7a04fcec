package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/benbeisheim/chess-backend/internal/model"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func feed(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// screen returns the terminal cell at the center of a square.
func screen(p model.Position) (int, int) {
	return originX + p.Col*cellWidth + 1, originY + p.Row
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		x, y   int
		want   model.Position
		wantOK bool
	}{
		{2, 2, model.Position{Row: 0, Col: 0}, true},
		{4, 2, model.Position{Row: 0, Col: 0}, true},
		{5, 2, model.Position{Row: 0, Col: 1}, true},
		{25, 9, model.Position{Row: 7, Col: 7}, true},
		{1, 5, model.Position{}, false},
		{10, 1, model.Position{}, false},
		{26, 5, model.Position{}, false},
		{10, 10, model.Position{}, false},
	}
	for _, tt := range tests {
		got, ok := CellAt(tt.x, tt.y)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("CellAt(%d, %d) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKeyboardMove(t *testing.T) {
	m := New(nil)
	// Cursor starts on e2.
	m = feed(t, m, key("enter"), key("up"), key("up"), key(" "))

	if got := m.Game().CurrentPlayer(); got != model.Black {
		t.Fatalf("CurrentPlayer() = %v, want black", got)
	}
	if p := m.Game().Board().PieceAt(model.Position{Row: 4, Col: 4}); p == nil || p.Type != model.Pawn {
		t.Errorf("e4 = %v, want pawn", p)
	}
	if !strings.Contains(m.View(), "black to move") {
		t.Errorf("status does not announce black:\n%s", m.View())
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	m := New(nil)
	for i := 0; i < 10; i++ {
		m = feed(t, m, key("down"), key("left"))
	}
	if got := m.Cursor(); got != (model.Position{Row: 7, Col: 0}) {
		t.Errorf("Cursor() = %v, want a1", got)
	}
	m = feed(t, m, key("k"), key("l"))
	if got := m.Cursor(); got != (model.Position{Row: 6, Col: 1}) {
		t.Errorf("Cursor() = %v, want b2", got)
	}
}

func TestMouseMove(t *testing.T) {
	m := New(nil)
	x, y := screen(model.Position{Row: 7, Col: 6})
	m = feed(t, m, click(x, y))
	if sel, ok := m.Game().Selected(); !ok || sel != (model.Position{Row: 7, Col: 6}) {
		t.Fatalf("Selected() = %v, %v; want g1", sel, ok)
	}

	// Releases and right clicks are ignored.
	x, y = screen(model.Position{Row: 5, Col: 5})
	m = feed(t, m,
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	)
	if m.Game().CurrentPlayer() != model.White {
		t.Fatal("ignored mouse events committed a move")
	}

	m = feed(t, m, click(x, y))
	if p := m.Game().Board().PieceAt(model.Position{Row: 5, Col: 5}); p == nil || p.Type != model.Knight {
		t.Errorf("f3 = %v, want knight", p)
	}
}

func TestEscapeAndReset(t *testing.T) {
	m := New(nil)
	m = feed(t, m, key("enter"), key("esc"))
	if _, ok := m.Game().Selected(); ok {
		t.Error("esc did not clear the selection")
	}

	m = feed(t, m, key("enter"), key("up"), key("enter"), key("r"))
	if m.Game().CurrentPlayer() != model.White || m.Game().LastMove() != nil {
		t.Error("r did not reset the game")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := New(nil).Update(k)
		if cmd == nil {
			t.Fatalf("%v returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v did not quit", k)
		}
	}
}

func TestViewLayout(t *testing.T) {
	lines := strings.Split(New(nil).View(), "\n")
	if !strings.HasPrefix(lines[originY], "8 ") || !strings.HasPrefix(lines[originY+7], "1 ") {
		t.Errorf("rank labels misplaced:\n%s", strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[originY], "♜") || !strings.Contains(lines[originY+7], "♔") {
		t.Errorf("back ranks missing pieces:\n%s", strings.Join(lines, "\n"))
	}
}
