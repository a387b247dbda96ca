package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// castleSafe reports whether the king may castle to dest: it must not be in
// check now, on any square it passes over, or on arrival.
func (g *GameState) castleSafe(king *movegen.Piece, dest chess.Square) bool {
	if g.IsInCheck(king.Owner) {
		return false
	}
	for _, sq := range transit(king.Position, dest) {
		if !g.simulate(LogEntry{From: king.Position, To: sq, Type: movegen.Free}) {
			return false
		}
	}
	return g.simulate(LogEntry{From: king.Position, To: dest, Type: movegen.Castle})
}

// transit lists the squares strictly between the king's square and its
// castling destination.
func transit(from, to chess.Square) []chess.Square {
	step := 1
	if to.Col < from.Col {
		step = -1
	}
	var squares []chess.Square
	for col := from.Col + step; col != to.Col; col += step {
		squares = append(squares, chess.Square{Col: col, Row: from.Row})
	}
	return squares
}
