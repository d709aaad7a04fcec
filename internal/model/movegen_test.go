package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPossibleMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]*Piece
		from   string
		want   []string
	}{
		{
			name:   "empty cell",
			pieces: map[string]*Piece{},
			from:   "d4",
			want:   []string{},
		},
		{
			name:   "knight in corner",
			pieces: map[string]*Piece{"a1": NewPiece(Knight, White)},
			from:   "a1",
			want:   []string{"b3", "c2"},
		},
		{
			name: "knight skips own pieces and takes enemies",
			pieces: map[string]*Piece{
				"d4": NewPiece(Knight, White),
				"e6": NewPiece(Pawn, White),
				"c6": NewPiece(Pawn, Black),
			},
			from: "d4",
			want: []string{"b3", "b5", "c2", "c6", "e2", "f3", "f5"},
		},
		{
			name: "king unit steps",
			pieces: map[string]*Piece{
				"e1": NewPiece(King, White),
				"d1": NewPiece(Queen, White),
				"f2": NewPiece(Pawn, Black),
			},
			from: "e1",
			want: []string{"d2", "e2", "f1", "f2"},
		},
		{
			name: "king does not castle",
			pieces: map[string]*Piece{
				"e1": NewPiece(King, White),
				"h1": NewPiece(Rook, White),
			},
			from: "e1",
			want: []string{"d1", "d2", "e2", "f1", "f2"},
		},
		{
			name: "rook stops at blockers",
			pieces: map[string]*Piece{
				"d4": NewPiece(Rook, White),
				"d6": NewPiece(Pawn, Black),
				"b4": NewPiece(Pawn, White),
			},
			from: "d4",
			want: []string{"c4", "d1", "d2", "d3", "d5", "d6", "e4", "f4", "g4", "h4"},
		},
		{
			name: "bishop stops at blockers",
			pieces: map[string]*Piece{
				"c1": NewPiece(Bishop, White),
				"d2": NewPiece(Pawn, White),
				"a3": NewPiece(Knight, Black),
			},
			from: "c1",
			want: []string{"a3", "b2"},
		},
		{
			name: "queen is rook plus bishop",
			pieces: map[string]*Piece{
				"a1": NewPiece(Queen, Black),
				"a3": NewPiece(Pawn, Black),
				"c1": NewPiece(Pawn, White),
				"c3": NewPiece(Pawn, White),
			},
			from: "a1",
			want: []string{"a2", "b1", "b2", "c1", "c3"},
		},
		{
			name:   "white pawn double step from home rank",
			pieces: map[string]*Piece{"e2": NewPiece(Pawn, White)},
			from:   "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:   "black pawn double step from home rank",
			pieces: map[string]*Piece{"c7": NewPiece(Pawn, Black)},
			from:   "c7",
			want:   []string{"c5", "c6"},
		},
		{
			name:   "pawn single step off home rank",
			pieces: map[string]*Piece{"e4": NewPiece(Pawn, White)},
			from:   "e4",
			want:   []string{"e5"},
		},
		{
			name: "double step blocked on the second square",
			pieces: map[string]*Piece{
				"e2": NewPiece(Pawn, White),
				"e4": NewPiece(Knight, Black),
			},
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "pawn blocked in front has no advance",
			pieces: map[string]*Piece{
				"e2": NewPiece(Pawn, White),
				"e3": NewPiece(Knight, White),
			},
			from: "e2",
			want: []string{},
		},
		{
			name: "pawn captures diagonally forward only",
			pieces: map[string]*Piece{
				"d5": NewPiece(Pawn, White),
				"c6": NewPiece(Rook, Black),
				"e6": NewPiece(Rook, White),
				"c4": NewPiece(Rook, Black),
			},
			from: "d5",
			want: []string{"c6", "d6"},
		},
		{
			name: "edge pawn captures on one side",
			pieces: map[string]*Piece{
				"a7": NewPiece(Pawn, Black),
				"b6": NewPiece(Pawn, White),
			},
			from: "a7",
			want: []string{"a5", "a6", "b6"},
		},
		{
			name:   "pawn on far rank has no forward move",
			pieces: map[string]*Piece{"d8": NewPiece(Pawn, White)},
			from:   "d8",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := place(t, tt.pieces)
			got := labels(b.PossibleMoves(sq(tt.from)))
			if diff := cmp.Diff(labels(squares(tt.want...)), got); diff != "" {
				t.Errorf("PossibleMoves(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestPawnDoubleStepScenario(t *testing.T) {
	b := place(t, map[string]*Piece{"e2": NewPiece(Pawn, White)})
	if diff := cmp.Diff([]string{"e3", "e4"}, labels(b.PossibleMoves(sq("e2")))); diff != "" {
		t.Fatalf("from e2 mismatch (-want +got):\n%s", diff)
	}
	b.applyMove(sq("e2"), sq("e4"))
	if diff := cmp.Diff([]string{"e5"}, labels(b.PossibleMoves(sq("e4")))); diff != "" {
		t.Fatalf("from e4 mismatch (-want +got):\n%s", diff)
	}
}

// TestSlidingTermination recomputes every ray of every sliding piece on a
// cluttered board: nothing past the first occupied square may appear, and the
// blocker appears exactly when it is hostile.
func TestSlidingTermination(t *testing.T) {
	b := NewBoard()
	b.applyMove(sq("e2"), sq("e4"))
	b.applyMove(sq("d7"), sq("d5"))
	b.applyMove(sq("d1"), sq("g4"))
	b.applyMove(sq("f8"), sq("b4"))
	b.applyMove(sq("a1"), sq("a4"))

	dirsFor := map[PieceType][]Position{
		Bishop: bishopDirs,
		Rook:   rookDirs,
		Queen:  append(append([]Position(nil), rookDirs...), bishopDirs...),
	}

	for _, color := range []Color{White, Black} {
		for _, from := range b.piecesOf(color) {
			piece := b.PieceAt(from)
			dirs, sliding := dirsFor[piece.Type]
			if !sliding {
				continue
			}
			generated := PositionSet{}
			generated.add(b.PossibleMoves(from)...)

			want := PositionSet{}
			for _, dir := range dirs {
				for cur := from.offset(dir.Row, dir.Col); cur.Valid(); cur = cur.offset(dir.Row, dir.Col) {
					occ := b.PieceAt(cur)
					if occ == nil {
						want.add(cur)
						continue
					}
					if occ.Color != piece.Color {
						want.add(cur)
					}
					break
				}
			}
			if diff := cmp.Diff(want, generated); diff != "" {
				t.Errorf("%s %s on %v mismatch (-want +got):\n%s", color, piece.Type, from, diff)
			}
		}
	}
}

func TestPossibleMovesOfPlayer(t *testing.T) {
	b := NewBoard()
	got := b.PossibleMovesOfPlayer(White)
	// 16 pawn destinations plus 4 knight destinations, and nothing else.
	want := PositionSet{}
	for col := 0; col < BoardSize; col++ {
		want.add(Position{Row: 5, Col: col}, Position{Row: 4, Col: col})
	}
	want.add(squares("a3", "c3", "f3", "h3")...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PossibleMovesOfPlayer(white) mismatch (-want +got):\n%s", diff)
	}
}
