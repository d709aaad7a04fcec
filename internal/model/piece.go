package model

// Color is a side, "white" or "black".
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// backRank is the row holding the side's king and rooks at setup.
func (c Color) backRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// homeRank is the row a side's pawns start on.
func (c Color) homeRank() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

func (c Color) pawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// spriteOrder is the column order of the 12-cell sprite sheet; black pieces
// occupy the second row.
var spriteOrder = []PieceType{King, Queen, Bishop, Knight, Rook, Pawn}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
	// Direction is the row step of a pawn's advance. Zero for other pieces.
	Direction int `json:"direction,omitempty"`
	Sprite    int `json:"sprite"`
}

func NewPiece(t PieceType, c Color) *Piece {
	p := &Piece{Type: t, Color: c, Sprite: -1}
	if t == Pawn {
		p.Direction = c.pawnDirection()
	}
	for i, st := range spriteOrder {
		if st == t {
			p.Sprite = i
			if c == Black {
				p.Sprite += len(spriteOrder)
			}
		}
	}
	return p
}

// tracksMoves reports whether HasMoved matters for this piece (castling).
func (p *Piece) tracksMoves() bool {
	return p.Type == King || p.Type == Rook
}

// Symbol returns the Unicode chess glyph for the piece.
func (p *Piece) Symbol() string {
	if p.Color == White {
		return whiteSymbols[p.Type]
	}
	return blackSymbols[p.Type]
}

var whiteSymbols = map[PieceType]string{
	King:   "♔",
	Queen:  "♕",
	Rook:   "♖",
	Bishop: "♗",
	Knight: "♘",
	Pawn:   "♙",
}

var blackSymbols = map[PieceType]string{
	King:   "♚",
	Queen:  "♛",
	Rook:   "♜",
	Bishop: "♝",
	Knight: "♞",
	Pawn:   "♟",
}
