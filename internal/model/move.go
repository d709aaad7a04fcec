package model

// Move is a single relocation recorded so it can be reverted exactly. It is
// never kept as history.
type Move struct {
	From     Position
	To       Position
	Piece    *Piece
	Captured *Piece
}

// SimpleMove is the origin and destination of the last committed move, for
// display.
type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// applyMove relocates the piece on from to to without touching any flags.
func (b *Board) applyMove(from, to Position) Move {
	m := Move{From: from, To: to, Piece: b.PieceAt(from), Captured: b.PieceAt(to)}
	b.squares[to.Row][to.Col] = m.Piece
	b.squares[from.Row][from.Col] = nil
	return m
}

// revertMove undoes applyMove, restoring the captured piece if there was one.
func (b *Board) revertMove(m Move) {
	b.squares[m.From.Row][m.From.Col] = m.Piece
	b.squares[m.To.Row][m.To.Col] = m.Captured
}
