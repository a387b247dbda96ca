package chess

import "github.com/lgbarn/chess-rules-go/internal/errors"

// PieceID identifies a piece owned by a game. The board stores identifiers
// only; the owning game resolves them to piece values.
type PieceID int

// NoPiece is the identifier of an empty square.
const NoPiece PieceID = 0

// Board is the 8x8 placement index. Each square holds at most one piece
// identifier; board[col][row].
type Board struct {
	Squares [BoardSize][BoardSize]PieceID
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the identifier at sq (NoPiece when empty).
func (b *Board) At(sq Square) (PieceID, error) {
	if !sq.InBounds() {
		return NoPiece, errors.Wrapf(errors.ErrOutOfBounds, "board at %d,%d", sq.Col, sq.Row)
	}
	return b.Squares[sq.Col][sq.Row], nil
}

// Set places id at sq; NoPiece clears the square.
func (b *Board) Set(sq Square, id PieceID) error {
	if !sq.InBounds() {
		return errors.Wrapf(errors.ErrOutOfBounds, "board set %d,%d", sq.Col, sq.Row)
	}
	b.Squares[sq.Col][sq.Row] = id
	return nil
}

// MovePiece clears from and places its occupant at to, overwriting whatever
// was there. It does not check legality.
func (b *Board) MovePiece(from, to Square) error {
	id, err := b.At(from)
	if err != nil {
		return err
	}
	if !to.InBounds() {
		return errors.Wrapf(errors.ErrOutOfBounds, "board move to %d,%d", to.Col, to.Row)
	}
	b.Squares[from.Col][from.Row] = NoPiece
	b.Squares[to.Col][to.Row] = id
	return nil
}

// Find returns the square holding id, or NoSquare.
func (b *Board) Find(id PieceID) Square {
	if id == NoPiece {
		return NoSquare
	}
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if b.Squares[col][row] == id {
				return Square{Col: col, Row: row}
			}
		}
	}
	return NoSquare
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if b.Squares[col][row] != NoPiece {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
