package model

// IsKingInCheck reports whether color's king stands on a square the opponent
// can reach. The opponent's king moves are included without their own check
// test, so the question never recurses.
func (b *Board) IsKingInCheck(color Color) bool {
	king := b.FindKingPosition(color)
	return b.PossibleMovesOfPlayer(color.Opponent()).Contains(king)
}
