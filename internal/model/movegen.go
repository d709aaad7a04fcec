package model

var (
	rookDirs      = []Position{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}
	bishopDirs    = []Position{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}
	knightOffsets = []Position{
		{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: -1, Col: 2}, {Row: -2, Col: 1},
		{Row: 1, Col: -2}, {Row: 2, Col: -1}, {Row: -1, Col: -2}, {Row: -2, Col: -1},
	}
	kingOffsets = []Position{
		{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}
)

// moveGenerator returns the pseudo-legal destinations of piece standing on
// from. Pseudo-legal moves ignore whether the mover's king ends up in check.
type moveGenerator func(b *Board, from Position, piece *Piece) []Position

var generators = map[PieceType]moveGenerator{
	Pawn:   pawnMoves,
	Knight: knightMoves,
	Bishop: bishopMoves,
	Rook:   rookMoves,
	Queen:  queenMoves,
	King:   kingMoves,
}

// PossibleMoves returns the pseudo-legal destinations of the piece on pos,
// or nil when the cell is empty.
func (b *Board) PossibleMoves(pos Position) []Position {
	piece := b.PieceAt(pos)
	if piece == nil {
		return nil
	}
	gen, ok := generators[piece.Type]
	if !ok {
		return nil
	}
	return gen(b, pos, piece)
}

// PossibleMovesOfPlayer unions the pseudo-legal destinations of every piece
// of color. It answers "which squares can color reach", not "which moves can
// color play".
func (b *Board) PossibleMovesOfPlayer(color Color) PositionSet {
	set := PositionSet{}
	for _, pos := range b.piecesOf(color) {
		set.add(b.PossibleMoves(pos)...)
	}
	return set
}

func slide(b *Board, from Position, piece *Piece, dirs []Position) []Position {
	var moves []Position
	for _, dir := range dirs {
		for target := from.offset(dir.Row, dir.Col); target.Valid(); target = target.offset(dir.Row, dir.Col) {
			occupant := b.squares[target.Row][target.Col]
			if occupant == nil {
				moves = append(moves, target)
				continue
			}
			if occupant.Color != piece.Color {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

// step tries each offset once; a destination is taken if empty or hostile.
func step(b *Board, from Position, piece *Piece, offsets []Position) []Position {
	var moves []Position
	for _, off := range offsets {
		target := from.offset(off.Row, off.Col)
		if !target.Valid() {
			continue
		}
		occupant := b.squares[target.Row][target.Col]
		if occupant == nil || occupant.Color != piece.Color {
			moves = append(moves, target)
		}
	}
	return moves
}

func bishopMoves(b *Board, from Position, piece *Piece) []Position {
	return slide(b, from, piece, bishopDirs)
}

func rookMoves(b *Board, from Position, piece *Piece) []Position {
	return slide(b, from, piece, rookDirs)
}

func queenMoves(b *Board, from Position, piece *Piece) []Position {
	return append(rookMoves(b, from, piece), bishopMoves(b, from, piece)...)
}

func knightMoves(b *Board, from Position, piece *Piece) []Position {
	return step(b, from, piece, knightOffsets)
}

func kingMoves(b *Board, from Position, piece *Piece) []Position {
	return step(b, from, piece, kingOffsets)
}

// pawnMoves has no promotion: a pawn on the far rank has no forward move.
func pawnMoves(b *Board, from Position, piece *Piece) []Position {
	var moves []Position
	dir := piece.Direction

	forward := from.offset(dir, 0)
	if forward.Valid() && b.squares[forward.Row][forward.Col] == nil {
		moves = append(moves, forward)
		if from.Row == piece.Color.homeRank() {
			double := from.offset(2*dir, 0)
			if b.squares[double.Row][double.Col] == nil {
				moves = append(moves, double)
			}
		}
	}

	for _, dCol := range []int{-1, 1} {
		capture := from.offset(dir, dCol)
		if !capture.Valid() {
			continue
		}
		if occupant := b.squares[capture.Row][capture.Col]; occupant != nil && occupant.Color != piece.Color {
			moves = append(moves, capture)
		}
	}
	return moves
}
