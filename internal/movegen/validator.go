package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Path is one line of sight: offsets from the mover's square, nearest
// first, walked under a single policy so that blocking accumulates.
type Path struct {
	Policy  Policy
	Offsets []chess.Offset
}

// Validate walks a path and classifies every square on it. The walk stops at
// the first offset that leaves the board.
func Validate(mover *Piece, path Path, lookup Lookup) Moves {
	moves := make(Moves, len(path.Offsets))
	if !mover.OnBoard() {
		return moves
	}

	var acc Accumulator
	for _, o := range path.Offsets {
		landing, query, err := locate(path.Policy, mover, o)
		if err != nil {
			break
		}

		probe := Probe{Occupant: occupant(lookup, query)}
		if path.Policy == PolicyCastle {
			probe.Clear = clearBetween(mover.Position, query, lookup)
		}

		var mv *Move
		acc, mv = acc.Step(path.Policy, mover, probe)
		mv.Query = query
		moves[landing] = mv
	}
	return moves
}

// Generate produces the full move map for a piece: the union of the
// validated maps of all its paths.
func Generate(p *Piece, lookup Lookup) Moves {
	moves := make(Moves)
	for _, path := range Paths(p, lookup) {
		moves.merge(Validate(p, path, lookup))
	}
	return moves
}

func occupant(lookup Lookup, sq chess.Square) *Piece {
	if lookup == nil {
		return nil
	}
	return lookup(sq)
}

func clearBetween(from, to chess.Square, lookup Lookup) bool {
	for _, sq := range between(from, to) {
		if occupant(lookup, sq) != nil {
			return false
		}
	}
	return true
}
