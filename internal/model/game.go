package model

// SelectionResult is what a call to HandleSelection did.
type SelectionResult int

const (
	// SelectionCleared means the click was neither an own piece nor a legal
	// target; any selection was dropped and the board is untouched.
	SelectionCleared SelectionResult = iota
	PieceSelected
	MoveCommitted
	CastlingCommitted
)

func (r SelectionResult) String() string {
	switch r {
	case PieceSelected:
		return "selected"
	case MoveCommitted:
		return "moved"
	case CastlingCommitted:
		return "castled"
	default:
		return "cleared"
	}
}

// Committed reports whether the selection changed the board.
func (r SelectionResult) Committed() bool {
	return r == MoveCommitted || r == CastlingCommitted
}

// Game runs turn order and the select-then-move state machine over a Board.
// It is not safe for concurrent use.
type Game struct {
	board         *Board
	currentPlayer Color
	selected      *Position
	possibleMoves []Position
	specialMoves  []CastlingMove
	lastMove      *SimpleMove
}

// GameState is a detached snapshot of a game for rendering and transport.
type GameState struct {
	Board          Layout         `json:"board"`
	ToMove         Color          `json:"toMove"`
	IsCheck        bool           `json:"isCheck"`
	SelectedSquare *Position      `json:"selectedSquare"`
	LegalMoves     []Position     `json:"legalMoves"`
	CastlingMoves  []CastlingMove `json:"castlingMoves"`
	LastMove       *SimpleMove    `json:"lastMove"`
}

// NewGame starts a game from the opening position with white to move.
func NewGame() *Game {
	return NewGameFromBoard(NewBoard(), White)
}

// NewGameFromBoard starts a game on an arbitrary board.
func NewGameFromBoard(b *Board, toMove Color) *Game {
	return &Game{board: b, currentPlayer: toMove}
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) CurrentPlayer() Color {
	return g.currentPlayer
}

// Selected returns the selected square, if any.
func (g *Game) Selected() (Position, bool) {
	if g.selected == nil {
		return Position{}, false
	}
	return *g.selected, true
}

// PossibleMoves returns the legal destinations of the selected piece.
func (g *Game) PossibleMoves() []Position {
	return append([]Position(nil), g.possibleMoves...)
}

// SpecialMoves returns the castling options of the selected king.
func (g *Game) SpecialMoves() []CastlingMove {
	return append([]CastlingMove(nil), g.specialMoves...)
}

func (g *Game) LastMove() *SimpleMove {
	if g.lastMove == nil {
		return nil
	}
	m := *g.lastMove
	return &m
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.board.IsKingInCheck(g.currentPlayer)
}

// Reset puts the game back to the opening position with white to move.
func (g *Game) Reset() {
	g.board.Reset()
	g.currentPlayer = White
	g.lastMove = nil
	g.clearSelection()
}

// Deselect drops the current selection without touching the board.
func (g *Game) Deselect() {
	g.clearSelection()
}

// HandleSelection feeds one click into the state machine. Clicking an own
// piece selects it; clicking a legal destination or castling target of the
// selection commits the move and passes the turn; anything else cancels.
func (g *Game) HandleSelection(pos Position) SelectionResult {
	if p := g.board.PieceAt(pos); p != nil && p.Color == g.currentPlayer {
		g.selectPiece(pos, p)
		return PieceSelected
	}
	defer g.clearSelection()

	if g.selected == nil {
		return SelectionCleared
	}
	if containsPosition(g.possibleMoves, pos) {
		g.commitMove(*g.selected, pos)
		return MoveCommitted
	}
	for _, cm := range g.specialMoves {
		if cm.Matches(pos) {
			g.board.DoCastling(cm)
			g.lastMove = &SimpleMove{From: cm.KingFrom, To: cm.KingTo}
			g.togglePlayer()
			return CastlingCommitted
		}
	}
	return SelectionCleared
}

// LegalMoves returns the pseudo-legal destinations of the piece on from
// that do not leave its own king in check. Each candidate is applied to the
// board, tested, and reverted, so pins fall out of the simulation.
func (g *Game) LegalMoves(from Position) []Position {
	piece := g.board.PieceAt(from)
	if piece == nil {
		return nil
	}
	var legal []Position
	for _, to := range g.board.PossibleMoves(from) {
		m := g.board.applyMove(from, to)
		if !g.board.IsKingInCheck(piece.Color) {
			legal = append(legal, to)
		}
		g.board.revertMove(m)
	}
	return legal
}

func (g *Game) selectPiece(pos Position, p *Piece) {
	g.selected = &pos
	g.possibleMoves = g.LegalMoves(pos)
	g.specialMoves = nil
	if p.Type == King && !g.InCheck() {
		g.specialMoves = g.board.CastlingMoves(g.currentPlayer)
	}
}

func (g *Game) commitMove(from, to Position) {
	m := g.board.applyMove(from, to)
	if m.Piece.tracksMoves() {
		m.Piece.HasMoved = true
	}
	g.lastMove = &SimpleMove{From: from, To: to}
	g.togglePlayer()
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.possibleMoves = nil
	g.specialMoves = nil
}

func (g *Game) togglePlayer() {
	g.currentPlayer = g.currentPlayer.Opponent()
}

// State returns a snapshot that shares nothing with the live game.
func (g *Game) State() GameState {
	s := GameState{
		Board:         g.board.Clone().Layout(),
		ToMove:        g.currentPlayer,
		IsCheck:       g.InCheck(),
		LegalMoves:    g.PossibleMoves(),
		CastlingMoves: g.SpecialMoves(),
		LastMove:      g.LastMove(),
	}
	if pos, ok := g.Selected(); ok {
		s.SelectedSquare = &pos
	}
	if s.LegalMoves == nil {
		s.LegalMoves = []Position{}
	}
	if s.CastlingMoves == nil {
		s.CastlingMoves = []CastlingMove{}
	}
	return s
}
