// Package render draws game snapshots as SVG images.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/benbeisheim/chess-backend/internal/model"
)

const (
	CellSize  = 80
	BoardSide = CellSize * model.BoardSize
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	lastMove    = "fill:#cdd26a;fill-opacity:0.6"
	checkSquare = "fill:#e84c3d;fill-opacity:0.7"

	selectedOutline = "fill:none;stroke:#f4d03f;stroke-width:6"
	quietOutline    = "fill:none;stroke:#27ae60;stroke-width:4"
	captureOutline  = "fill:none;stroke:#c0392b;stroke-width:4"
	castleOutline   = "fill:none;stroke:#2e86c1;stroke-width:4"

	glyphStyle = "font-size:60px;text-anchor:middle;dominant-baseline:central;font-family:serif"
)

// Board writes st as a standalone SVG document.
func Board(w io.Writer, st model.GameState) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(BoardSide, BoardSide)
	canvas.Title(fmt.Sprintf("%s to move", st.ToMove))

	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			style := lightSquare
			if (row+col)%2 == 1 {
				style = darkSquare
			}
			cell(canvas, model.Position{Row: row, Col: col}, style)
		}
	}

	if st.LastMove != nil {
		cell(canvas, st.LastMove.From, lastMove)
		cell(canvas, st.LastMove.To, lastMove)
	}
	if st.IsCheck {
		if king, ok := kingSquare(st.Board, st.ToMove); ok {
			cell(canvas, king, checkSquare)
		}
	}

	if st.SelectedSquare != nil {
		outline(canvas, *st.SelectedSquare, selectedOutline)
	}
	for _, to := range st.LegalMoves {
		style := quietOutline
		if st.Board[to.Row][to.Col] != nil {
			style = captureOutline
		}
		outline(canvas, to, style)
	}
	for _, cm := range st.CastlingMoves {
		outline(canvas, cm.KingTo, castleOutline)
	}

	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if p := st.Board[row][col]; p != nil {
				canvas.Text(col*CellSize+CellSize/2, row*CellSize+CellSize/2, p.Symbol(), glyphStyle)
			}
		}
	}

	canvas.End()
	return ew.err
}

func cell(canvas *svg.SVG, p model.Position, style string) {
	canvas.Rect(p.Col*CellSize, p.Row*CellSize, CellSize, CellSize, style)
}

// outline insets the stroke so neighbouring outlines do not overlap.
func outline(canvas *svg.SVG, p model.Position, style string) {
	const inset = 4
	canvas.Rect(p.Col*CellSize+inset, p.Row*CellSize+inset, CellSize-2*inset, CellSize-2*inset, style)
}

func kingSquare(b model.Layout, c model.Color) (model.Position, bool) {
	for row := range b {
		for col, p := range b[row] {
			if p != nil && p.Type == model.King && p.Color == c {
				return model.Position{Row: row, Col: col}, true
			}
		}
	}
	return model.Position{}, false
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
