package model

import (
	"fmt"
	"sort"
	"testing"
)

// sq converts a square label such as "e2" into a Position.
func sq(name string) Position {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		panic(fmt.Sprintf("bad square %q", name))
	}
	return Position{Row: BoardSize - int(name[1]-'0'), Col: int(name[0] - 'a')}
}

func squares(names ...string) []Position {
	out := make([]Position, 0, len(names))
	for _, n := range names {
		out = append(out, sq(n))
	}
	return out
}

// place builds a board from square→piece pairs.
func place(t *testing.T, pieces map[string]*Piece) *Board {
	t.Helper()
	b := NewEmptyBoard()
	for name, p := range pieces {
		b.SetPieceAt(sq(name), p)
	}
	return b
}

// labels returns the algebraic names of ps in alphabetical order.
func labels(ps []Position) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.String())
	}
	sort.Strings(out)
	return out
}

type flagSnapshot map[*Piece]bool

func snapshotFlags(b *Board) flagSnapshot {
	s := flagSnapshot{}
	layout := b.Layout()
	for row := range layout {
		for _, p := range layout[row] {
			if p != nil {
				s[p] = p.HasMoved
			}
		}
	}
	return s
}
