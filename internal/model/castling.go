package model

import "fmt"

const kingHomeCol = 4

// CastlingMove is a king and rook displacement derived from the board. It
// is recomputed whenever the king is selected.
type CastlingMove struct {
	KingFrom Position `json:"kingFrom"`
	KingTo   Position `json:"kingTo"`
	RookFrom Position `json:"rookFrom"`
	RookTo   Position `json:"rookTo"`
}

// newCastlingMove builds the move for a king on kingFrom castling toward
// dir (-1 queenside, +1 kingside).
func newCastlingMove(kingFrom Position, dir int) CastlingMove {
	rookCol := 0
	if dir > 0 {
		rookCol = BoardSize - 1
	}
	return CastlingMove{
		KingFrom: kingFrom,
		KingTo:   kingFrom.offset(0, 2*dir),
		RookFrom: Position{Row: kingFrom.Row, Col: rookCol},
		RookTo:   kingFrom.offset(0, dir),
	}
}

// Matches reports whether selecting pos picks this castling option.
func (m CastlingMove) Matches(pos Position) bool {
	return pos == m.KingTo
}

// CastlingMoves returns the castling options open to color. The king and
// the chosen rook must both be unmoved, and every square strictly between
// them must be empty and unreachable by the opponent. The king's own square
// is not tested: callers check IsKingInCheck first.
func (b *Board) CastlingMoves(color Color) []CastlingMove {
	kingPos := Position{Row: color.backRank(), Col: kingHomeCol}
	king := b.PieceAt(kingPos)
	if king == nil || king.Type != King || king.Color != color || king.HasMoved {
		return nil
	}

	attacked := b.PossibleMovesOfPlayer(color.Opponent())
	var moves []CastlingMove
	for _, rookCol := range []int{0, BoardSize - 1} {
		rookPos := Position{Row: kingPos.Row, Col: rookCol}
		rook := b.PieceAt(rookPos)
		if rook == nil || rook.Type != Rook || rook.Color != color || rook.HasMoved {
			continue
		}

		dir := 1
		if rookCol < kingPos.Col {
			dir = -1
		}
		if b.castlingPathClear(kingPos, rookPos, dir, attacked) {
			moves = append(moves, newCastlingMove(kingPos, dir))
		}
	}
	return moves
}

func (b *Board) castlingPathClear(kingPos, rookPos Position, dir int, attacked PositionSet) bool {
	for sq := kingPos.offset(0, dir); sq != rookPos; sq = sq.offset(0, dir) {
		if b.squares[sq.Row][sq.Col] != nil || attacked.Contains(sq) {
			return false
		}
	}
	return true
}

// DoCastling relocates king and rook together and marks both as moved. m
// must come from CastlingMoves on the current board; anything else panics.
func (b *Board) DoCastling(m CastlingMove) {
	king, rook := b.PieceAt(m.KingFrom), b.PieceAt(m.RookFrom)
	switch {
	case king == nil || king.Type != King:
		panic(fmt.Sprintf("model: castling from %v without a king", m.KingFrom))
	case rook == nil || rook.Type != Rook || rook.Color != king.Color:
		panic(fmt.Sprintf("model: castling with %v without a matching rook", m.RookFrom))
	case b.PieceAt(m.KingTo) != nil || b.PieceAt(m.RookTo) != nil:
		panic(fmt.Sprintf("model: castling onto occupied squares %v/%v", m.KingTo, m.RookTo))
	}

	b.SetPieceAt(m.KingFrom, nil)
	b.SetPieceAt(m.RookFrom, nil)
	b.SetPieceAt(m.KingTo, king)
	b.SetPieceAt(m.RookTo, rook)
	king.HasMoved = true
	rook.HasMoved = true
}
