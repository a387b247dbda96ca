package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// LegalDestinations returns the player's moves that do not leave their own
// king in check, keyed by landing square. Castling additionally requires
// that the king is not in check and crosses no attacked square.
func (g *GameState) LegalDestinations(player chess.Colour) Destinations {
	legal := make(Destinations)
	for sq, moves := range g.PseudoLegalDestinations(player) {
		for _, mv := range moves {
			if mv.Legal() && g.safe(mv, sq) {
				legal[sq] = append(legal[sq], mv)
			}
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func (g *GameState) LegalMovesFrom(sq chess.Square) (movegen.Moves, error) {
	p := g.lookup(sq)
	if p == nil {
		return nil, errors.Wrapf(errors.ErrNoPieceAtSource, "legal moves from %s", sq)
	}
	moves := make(movegen.Moves)
	for dest, mv := range movegen.Generate(p, g.lookup) {
		if mv.Legal() && g.safe(mv, dest) {
			moves[dest] = mv
		}
	}
	return moves, nil
}

// LegalMoveList returns the player's legal moves ordered by origin square,
// then destination square.
func (g *GameState) LegalMoveList(player chess.Colour) MoveLog {
	byKey := make(map[int]LogEntry)
	for sq, moves := range g.LegalDestinations(player) {
		for _, mv := range moves {
			from := mv.Responding.Position
			byKey[from.Index()*chess.BoardSize*chess.BoardSize+sq.Index()] = LogEntry{From: from, To: sq, Type: mv.Type}
		}
	}

	keys := maps.Keys(byKey)
	slices.Sort(keys)
	list := make(MoveLog, 0, len(keys))
	for _, k := range keys {
		list = append(list, byKey[k])
	}
	return list
}

// HasLegalMove reports whether the player can move at all.
func (g *GameState) HasLegalMove(player chess.Colour) bool {
	for sq, moves := range g.PseudoLegalDestinations(player) {
		for _, mv := range moves {
			if mv.Legal() && g.safe(mv, sq) {
				return true
			}
		}
	}
	return false
}

// Move plays the piece on from to to for the player whose turn it is.
func (g *GameState) Move(from, to chess.Square) error {
	p := g.lookup(from)
	if p == nil {
		return g.moveError(errors.ErrNoPieceAtSource, from, to, movegen.Free)
	}
	if p.Owner != g.ToMove() {
		return &errors.MoveError{
			Err:  errors.Wrapf(errors.ErrIllegalMove, "%s to move", g.ToMove()),
			Ply:  g.Ply() + 1,
			From: from.String(),
			To:   to.String(),
		}
	}

	mv := movegen.Generate(p, g.lookup)[to]
	if mv == nil || !mv.Legal() || !g.safe(mv, to) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: g.Ply() + 1, From: from.String(), To: to.String()}
	}
	g.apply(p, mv, to)
	return nil
}

// safe reports whether playing mv to dest keeps the mover's king out of check.
func (g *GameState) safe(mv *movegen.Move, dest chess.Square) bool {
	king := mv.Responding
	if mv.Type == movegen.Castle {
		return g.castleSafe(king, dest)
	}
	return g.simulate(LogEntry{From: king.Position, To: dest, Type: mv.Type})
}

// isLegal reports whether the piece has a legal move of type t to dest.
func (g *GameState) isLegal(p *movegen.Piece, dest chess.Square, t movegen.MoveType) bool {
	mv := movegen.Generate(p, g.lookup)[dest]
	return mv != nil && mv.Type == t && mv.Legal() && g.safe(mv, dest)
}

// simulate plays entry on a copy of the game rebuilt from the move log and
// reports whether the mover's king is safe afterwards. It is the only place
// that clones game state for legality checks.
func (g *GameState) simulate(entry LogEntry) bool {
	mover := g.lookup(entry.From)
	if mover == nil {
		return false
	}
	clone, err := LoadFromSetup(g.setup, g.log, g.simCfg)
	if err != nil {
		return false
	}
	if err := clone.applyEntry(entry); err != nil {
		return false
	}
	return !clone.IsInCheck(mover.Owner)
}
