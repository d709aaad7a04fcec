package model

import "fmt"

// Layout is a by-value copy of the board grid. Pointers are shared with the
// board, so two layouts compare equal exactly when every cell holds the same
// piece instance.
type Layout [BoardSize][BoardSize]*Piece

type Board struct {
	squares Layout
}

var backRankOrder = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board set up in the standard opening position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewEmptyBoard returns a board with no pieces on it.
func NewEmptyBoard() *Board {
	return &Board{}
}

// Reset clears the board and places fresh pieces in the opening position.
func (b *Board) Reset() {
	b.squares = Layout{}
	for _, c := range []Color{White, Black} {
		for col := 0; col < BoardSize; col++ {
			b.squares[c.backRank()][col] = NewPiece(backRankOrder[col], c)
			b.squares[c.homeRank()][col] = NewPiece(Pawn, c)
		}
	}
}

func (b *Board) PieceAt(pos Position) *Piece {
	mustBeOnBoard(pos)
	return b.squares[pos.Row][pos.Col]
}

// SetPieceAt places piece at pos. A nil piece empties the cell.
func (b *Board) SetPieceAt(pos Position, piece *Piece) {
	mustBeOnBoard(pos)
	b.squares[pos.Row][pos.Col] = piece
}

// Layout returns a copy of the grid.
func (b *Board) Layout() Layout {
	return b.squares
}

// FindKingPosition returns the square of color's king. Every legal position
// has one, so a missing king panics.
func (b *Board) FindKingPosition(color Color) Position {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if p != nil && p.Color == color && p.Type == King {
				return Position{Row: row, Col: col}
			}
		}
	}
	panic(fmt.Sprintf("model: no %s king on the board", color))
}

// Clone returns a deep copy; pieces are copied too.
func (b *Board) Clone() *Board {
	c := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				cp := *p
				c.squares[row][col] = &cp
			}
		}
	}
	return c
}

// piecesOf returns the squares holding color's pieces in row-major order.
func (b *Board) piecesOf(color Color) []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.Color == color {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}
