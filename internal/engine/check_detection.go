package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// IsInCheck reports whether some opponent record attacks the player's king:
// capturable, at blocking level 0, on the king's square. A player without a
// king is never in check.
func (g *GameState) IsInCheck(player chess.Colour) bool {
	king := g.king(player)
	if king == nil {
		return false
	}
	return len(g.attackers(king.Position, player.Opposite())) > 0
}

// attackers returns the by player's records that can capture on sq now.
func (g *GameState) attackers(sq chess.Square, by chess.Colour) []*movegen.Move {
	var found []*movegen.Move
	for _, mv := range g.PseudoLegalDestinations(by)[sq] {
		if mv.Attacks() {
			found = append(found, mv)
		}
	}
	return found
}
