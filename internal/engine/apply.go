package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// Apply plays a move record produced by this game onto dest.
//
// The record is trusted to come from LegalDestinations: own-king safety is
// not re-checked unless the game's configuration sets StrictApply. A record
// whose piece is not on this game's board yields ErrNoPieceAtSource and
// leaves the game unchanged; a record that is not a real move (blocked, or
// behind another piece) yields ErrIllegalMove.
func (g *GameState) Apply(mv *movegen.Move, dest chess.Square) error {
	if mv == nil || !g.owns(mv.Responding) {
		return &errors.MoveError{Err: errors.ErrNoPieceAtSource, Ply: g.Ply() + 1, To: dest.String()}
	}
	p := mv.Responding
	if !mv.Legal() {
		return g.moveError(errors.ErrIllegalMove, p.Position, dest, mv.Type)
	}
	if g.cfg.Engine != nil && g.cfg.Engine.StrictApply && !g.isLegal(p, dest, mv.Type) {
		return g.moveError(errors.ErrIllegalMove, p.Position, dest, mv.Type)
	}
	g.apply(p, mv, dest)
	return nil
}

// applyEntry replays a log entry by regenerating the moving piece's records
// and playing the one that lands on the entry's destination.
func (g *GameState) applyEntry(entry LogEntry) error {
	p := g.lookup(entry.From)
	if p == nil {
		err := fmt.Errorf("%w: %w", errors.ErrInvalidLog, errors.ErrNoPieceAtSource)
		return g.moveError(err, entry.From, entry.To, entry.Type)
	}
	mv, ok := movegen.Generate(p, g.lookup)[entry.To]
	if !ok || !mv.Legal() || mv.Type != entry.Type {
		return g.moveError(errors.ErrInvalidLog, entry.From, entry.To, entry.Type)
	}
	g.apply(p, mv, entry.To)
	return nil
}

// apply performs the move: clear stale en passant targets, remove any
// captured piece, relocate the mover (and rook when castling), offer en
// passant after a double step, promote, compact, reindex and log.
func (g *GameState) apply(p *movegen.Piece, mv *movegen.Move, dest chess.Square) {
	from := p.Position
	entry := LogEntry{From: from, To: dest, Type: mv.Type}

	g.clearEnPassant()

	switch mv.Type {
	case movegen.Capture:
		g.capture(g.lookup(dest))
		g.relocate(p, dest)

	case movegen.EnPassant:
		g.capture(g.lookup(mv.Query))
		g.relocate(p, dest)

	case movegen.Castle:
		rook := g.lookup(mv.Query)
		g.castle(p, dest, rook, movegen.RookCastleSquare(from, dest))

	default:
		g.relocate(p, dest)
	}

	if p.Kind == chess.Pawn {
		if abs(dest.Row-from.Row) == 2 {
			g.offerEnPassant(p)
		}
		if dest.Row == chess.PromotionRow(p.Owner) {
			g.promote(p)
		}
	}

	g.compact()
	g.reindex()
	g.log = append(g.log, entry)

	g.cfg.Logf(2, "ply %d: %s %s", len(g.log), p.Kind, entry)
}

func (g *GameState) relocate(p *movegen.Piece, to chess.Square) {
	_ = g.board.Set(p.Position, chess.NoPiece)
	_ = g.board.Set(to, p.ID)
	p.Position = to
	p.Moved = true
}

// castle lifts king and rook before placing either, so the two may swap
// through each other's squares.
func (g *GameState) castle(king *movegen.Piece, kingTo chess.Square, rook *movegen.Piece, rookTo chess.Square) {
	_ = g.board.Set(king.Position, chess.NoPiece)
	if rook != nil {
		_ = g.board.Set(rook.Position, chess.NoPiece)
		_ = g.board.Set(rookTo, rook.ID)
		rook.Position = rookTo
		rook.Moved = true
	}
	_ = g.board.Set(kingTo, king.ID)
	king.Position = kingTo
	king.Moved = true
}

func (g *GameState) capture(victim *movegen.Piece) {
	if victim == nil {
		return
	}
	_ = g.board.Set(victim.Position, chess.NoPiece)
	victim.Position = chess.NoSquare
	g.cfg.Logf(2, "captured %s %s", victim.Owner, victim.Kind)
}

func (g *GameState) clearEnPassant() {
	for _, p := range g.pieces {
		p.EnPassantTarget = chess.NoSquare
	}
}

// offerEnPassant marks the enemy pawns beside a pawn that just advanced two
// squares.
func (g *GameState) offerEnPassant(pawn *movegen.Piece) {
	for _, side := range []int{-1, 1} {
		sq, err := pawn.Position.Add(chess.Offset{Col: side})
		if err != nil {
			continue
		}
		if other := g.lookup(sq); other != nil && other.Kind == chess.Pawn && pawn.Enemy(other) {
			other.EnPassantTarget = pawn.Position
		}
	}
}

// promote replaces a pawn on its last row with a new queen in the same slot
// of the piece set.
func (g *GameState) promote(pawn *movegen.Piece) {
	sq := pawn.Position
	queen := g.newPiece(chess.Queen, pawn.Owner, sq)
	queen.Moved = true

	delete(g.byID, pawn.ID)
	pawn.Position = chess.NoSquare
	for i, p := range g.pieces {
		if p == pawn {
			g.pieces[i] = queen
			break
		}
	}
	g.cfg.Logf(2, "promoted %s pawn on %s", queen.Owner, sq)
}

// compact drops captured pieces from the active set.
func (g *GameState) compact() {
	live := g.pieces[:0]
	for _, p := range g.pieces {
		if p.OnBoard() {
			live = append(live, p)
			continue
		}
		delete(g.byID, p.ID)
	}
	for i := len(live); i < len(g.pieces); i++ {
		g.pieces[i] = nil
	}
	g.pieces = live
}

func (g *GameState) moveError(err error, from, to chess.Square, t movegen.MoveType) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      g.Ply() + 1,
		From:     from.String(),
		To:       to.String(),
		MoveType: t.String(),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
