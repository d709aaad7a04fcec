package model

import "fmt"

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Position is a 0-indexed (row, col) cell reference. Row 0 is black's back
// rank and row 7 is white's.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Valid reports whether p lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (p Position) offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the square label, e.g. "e2" for (6,4).
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, BoardSize-p.Row)
}

func mustBeOnBoard(p Position) {
	if !p.Valid() {
		panic(fmt.Sprintf("model: position (%d,%d) is off the board", p.Row, p.Col))
	}
}

// PositionSet is an unordered set of positions.
type PositionSet map[Position]struct{}

func (s PositionSet) add(positions ...Position) {
	for _, p := range positions {
		s[p] = struct{}{}
	}
}

// Contains reports whether p is in the set.
func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

func containsPosition(positions []Position, p Position) bool {
	for _, candidate := range positions {
		if candidate == p {
			return true
		}
	}
	return false
}
