package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// Destinations maps each target square to the move records reaching it.
type Destinations map[chess.Square][]*movegen.Move

// reindex refreshes the destinations index after a change, or marks it
// stale when the game runs in replay-only mode.
func (g *GameState) reindex() {
	if g.lazy {
		g.stale = true
		return
	}
	g.rebuild()
}

// rebuild regenerates every live piece's records. Records for one square
// are listed in piece order.
func (g *GameState) rebuild() {
	index := map[chess.Colour]Destinations{
		chess.White: {},
		chess.Black: {},
	}
	for _, p := range g.pieces {
		for sq, mv := range movegen.Generate(p, g.lookup) {
			index[p.Owner][sq] = append(index[p.Owner][sq], mv)
		}
	}
	g.destinations = index
	g.stale = false
}

// PseudoLegalDestinations returns every record the player's pieces generate,
// at any blocking level and without own-king safety applied. The returned
// map belongs to the game and must not be modified.
func (g *GameState) PseudoLegalDestinations(player chess.Colour) Destinations {
	if g.stale {
		g.rebuild()
	}
	return g.destinations[player]
}
