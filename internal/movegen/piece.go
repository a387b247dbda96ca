// Package movegen turns a piece and an occupant lookup into classified move
// records. Generation is pure: it reads the board through a Lookup and never
// mutates pieces.
package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Piece is a live chess piece. The owning game mutates it in place as moves
// are applied; generation only reads it.
type Piece struct {
	ID       chess.PieceID
	Kind     chess.Piece
	Owner    chess.Colour
	Position chess.Square // chess.NoSquare once captured
	Moved    bool

	// EnPassantTarget is the square of an enemy pawn that just advanced two
	// squares beside this pawn, or chess.NoSquare.
	EnPassantTarget chess.Square
}

// NewPiece creates an unmoved piece at pos.
func NewPiece(id chess.PieceID, kind chess.Piece, owner chess.Colour, pos chess.Square) *Piece {
	return &Piece{
		ID:              id,
		Kind:            kind,
		Owner:           owner,
		Position:        pos,
		EnPassantTarget: chess.NoSquare,
	}
}

// Lookup returns the piece standing on sq, or nil.
type Lookup func(sq chess.Square) *Piece

// OnBoard reports whether the piece has not been captured.
func (p *Piece) OnBoard() bool {
	return p.Position.InBounds()
}

// HasEnPassantTarget reports whether an en passant capture is on offer.
func (p *Piece) HasEnPassantTarget() bool {
	return p.EnPassantTarget.InBounds()
}

// Enemy reports whether other belongs to the opponent. A nil other is not an enemy.
func (p *Piece) Enemy(other *Piece) bool {
	return other != nil && other.Owner != p.Owner
}

// Friendly reports whether other belongs to the same player. A nil other is not friendly.
func (p *Piece) Friendly(other *Piece) bool {
	return other != nil && other.Owner == p.Owner
}

// String returns e.g. "White Knight g1".
func (p *Piece) String() string {
	return p.Owner.String() + " " + p.Kind.String() + " " + p.Position.String()
}
