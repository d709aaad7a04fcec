// Package tui is a hot-seat chess board for the terminal. Two players share
// one keyboard or mouse; selections go straight into the rule engine.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benbeisheim/chess-backend/internal/model"
)

// Board geometry in terminal cells. The board starts after the title line
// and the file header; each square is cellWidth columns wide.
const (
	cellWidth = 3
	originX   = 2
	originY   = 2
)

type styles struct {
	light, dark, cursor, selected, target, capture, castle, check lipgloss.Style
	title, status, help                                           lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	square := r.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	return styles{
		light:    square.Background(lipgloss.Color("#f0d9b5")).Foreground(lipgloss.Color("#000000")),
		dark:     square.Background(lipgloss.Color("#b58863")).Foreground(lipgloss.Color("#000000")),
		cursor:   square.Background(lipgloss.Color("#5dade2")).Foreground(lipgloss.Color("#000000")),
		selected: square.Background(lipgloss.Color("#f4d03f")).Foreground(lipgloss.Color("#000000")),
		target:   square.Background(lipgloss.Color("#82e0aa")).Foreground(lipgloss.Color("#000000")),
		capture:  square.Background(lipgloss.Color("#ec7063")).Foreground(lipgloss.Color("#000000")),
		castle:   square.Background(lipgloss.Color("#85c1e9")).Foreground(lipgloss.Color("#000000")),
		check:    square.Background(lipgloss.Color("#c0392b")).Foreground(lipgloss.Color("#ffffff")),
		title:    r.NewStyle().Bold(true),
		status:   r.NewStyle().Italic(true),
		help:     r.NewStyle().Faint(true),
	}
}

// Model is the bubbletea model. It owns its game.
type Model struct {
	game   *model.Game
	cursor model.Position
	status string
	styles styles
}

// New returns a model on a fresh game. A nil renderer uses the process
// default; SSH sessions pass their own.
func New(r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Model{
		game:   model.NewGame(),
		cursor: model.Position{Row: 6, Col: 4},
		status: "white to move",
		styles: newStyles(r),
	}
}

func (m Model) Game() *model.Game {
	return m.game
}

func (m Model) Cursor() model.Position {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1, 0)
		case "down", "j":
			m.moveCursor(1, 0)
		case "left", "h":
			m.moveCursor(0, -1)
		case "right", "l":
			m.moveCursor(0, 1)
		case "enter", " ":
			m.selectAt(m.cursor)
		case "esc":
			m.game.Deselect()
			m.status = m.turnStatus()
		case "r":
			m.game.Reset()
			m.status = "new game, " + m.turnStatus()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		if pos, ok := CellAt(msg.X, msg.Y); ok {
			m.cursor = pos
			m.selectAt(pos)
		}
	}
	return m, nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	next := model.Position{Row: m.cursor.Row + dRow, Col: m.cursor.Col + dCol}
	if next.Valid() {
		m.cursor = next
	}
}

func (m *Model) selectAt(pos model.Position) {
	mover := m.game.CurrentPlayer()
	switch result := m.game.HandleSelection(pos); result {
	case model.PieceSelected:
		n := len(m.game.PossibleMoves()) + len(m.game.SpecialMoves())
		m.status = fmt.Sprintf("%s %s on %v: %d moves", mover, m.game.Board().PieceAt(pos).Type, pos, n)
	case model.MoveCommitted, model.CastlingCommitted:
		last := m.game.LastMove()
		m.status = fmt.Sprintf("%s %s %v-%v, %s", mover, result, last.From, last.To, m.turnStatus())
	default:
		m.status = m.turnStatus()
	}
}

func (m Model) turnStatus() string {
	s := fmt.Sprintf("%s to move", m.game.CurrentPlayer())
	if m.game.InCheck() {
		s += ", check"
	}
	return s
}

// CellAt maps a terminal cell to the board square drawn there.
func CellAt(x, y int) (model.Position, bool) {
	if x < originX || y < originY {
		return model.Position{}, false
	}
	pos := model.Position{Row: y - originY, Col: (x - originX) / cellWidth}
	return pos, pos.Valid()
}

func (m Model) View() string {
	st := m.game.State()
	sel := map[model.Position]lipgloss.Style{}
	for _, p := range st.LegalMoves {
		if st.Board[p.Row][p.Col] != nil {
			sel[p] = m.styles.capture
		} else {
			sel[p] = m.styles.target
		}
	}
	for _, cm := range st.CastlingMoves {
		sel[cm.KingTo] = m.styles.castle
	}
	if st.SelectedSquare != nil {
		sel[*st.SelectedSquare] = m.styles.selected
	}
	if st.IsCheck {
		for row := range st.Board {
			for col, p := range st.Board[row] {
				if p != nil && p.Type == model.King && p.Color == st.ToMove {
					sel[model.Position{Row: row, Col: col}] = m.styles.check
				}
			}
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("chess") + "\n")
	b.WriteString(strings.Repeat(" ", originX) + fileHeader() + "\n")
	for row := 0; row < model.BoardSize; row++ {
		fmt.Fprintf(&b, "%d ", model.BoardSize-row)
		for col := 0; col < model.BoardSize; col++ {
			pos := model.Position{Row: row, Col: col}
			style, ok := sel[pos]
			switch {
			case pos == m.cursor:
				style = m.styles.cursor
			case !ok && (row+col)%2 == 0:
				style = m.styles.light
			case !ok:
				style = m.styles.dark
			}
			glyph := " "
			if p := st.Board[row][col]; p != nil {
				glyph = p.Symbol()
			}
			b.WriteString(style.Render(glyph))
		}
		fmt.Fprintf(&b, " %d\n", model.BoardSize-row)
	}
	b.WriteString(strings.Repeat(" ", originX) + fileHeader() + "\n\n")
	b.WriteString(m.styles.status.Render(m.status) + "\n")
	b.WriteString(m.styles.help.Render("arrows/hjkl move, enter/space or click select, esc cancel, r reset, q quit") + "\n")
	return b.String()
}

func fileHeader() string {
	var b strings.Builder
	for col := 0; col < model.BoardSize; col++ {
		b.WriteString(" " + string(rune('a'+col)) + " ")
	}
	return b.String()
}
