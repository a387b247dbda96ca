package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Placement puts one piece on a square at the start of a game.
type Placement struct {
	Kind   chess.Piece
	Owner  chess.Colour
	Square chess.Square
	Moved  bool
}

// Setup is an initial placement of pieces.
type Setup []Placement

var backRank = [chess.BoardSize]chess.Piece{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// StandardSetup returns the standard starting layout, White pieces first.
func StandardSetup() Setup {
	setup := make(Setup, 0, 4*chess.BoardSize)
	for _, colour := range chess.Colours {
		home := chess.HomeRow(colour)
		pawnRow := home + chess.ColourOffset(colour)
		for col, kind := range backRank {
			setup = append(setup, Placement{Kind: kind, Owner: colour, Square: chess.Square{Col: col, Row: home}})
		}
		for col := 0; col < chess.BoardSize; col++ {
			setup = append(setup, Placement{Kind: chess.Pawn, Owner: colour, Square: chess.Square{Col: col, Row: pawnRow}})
		}
	}
	return setup
}

// Validate checks that every placement is on the board, names a real piece
// and that no two share a square.
func (s Setup) Validate() error {
	seen := make(map[chess.Square]bool, len(s))
	for i, pl := range s {
		if !pl.Square.InBounds() {
			return errors.Wrapf(errors.ErrOutOfBounds, "setup placement %d", i)
		}
		if pl.Kind <= chess.Empty || pl.Kind >= chess.NumPieceValues {
			return errors.Wrapf(errors.ErrInvalidConfig, "setup placement %d: piece kind %d", i, pl.Kind)
		}
		if seen[pl.Square] {
			return errors.Wrapf(errors.ErrInvalidConfig, "setup: two pieces on %s", pl.Square)
		}
		seen[pl.Square] = true
	}
	return nil
}

// Copy returns an independent copy of the setup.
func (s Setup) Copy() Setup {
	return append(Setup(nil), s...)
}
