package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a board coordinate: Col 0..7 is file a..h, Row 0..7 is rank 1..8.
type Square struct {
	Col int
	Row int
}

// NoSquare marks an absent coordinate, e.g. the position of a captured piece.
var NoSquare = Square{Col: -1, Row: -1}

// Offset is a relative displacement between two squares.
type Offset struct {
	Col int
	Row int
}

// NewSquare returns the square at the given indices, or ErrOutOfBounds.
func NewSquare(col, row int) (Square, error) {
	sq := Square{Col: col, Row: row}
	if !sq.InBounds() {
		return NoSquare, errors.Wrapf(errors.ErrOutOfBounds, "square (%d, %d)", col, row)
	}
	return sq, nil
}

// SquareFromIndex converts a 0..63 index (a1 = 0, h8 = 63) to a square.
func SquareFromIndex(index int) (Square, error) {
	if index < 0 || index >= BoardSize*BoardSize {
		return NoSquare, errors.Wrapf(errors.ErrOutOfBounds, "square index %d", index)
	}
	return Square{Col: index % BoardSize, Row: index / BoardSize}, nil
}

// ParseSquare converts algebraic notation such as "e4" to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &errors.ParseError{Err: errors.ErrInvalidNotation, Expected: "square", Got: s}
	}
	col := int(s[0]) - ColBase
	row := int(s[1]) - RankBase
	sq := Square{Col: col, Row: row}
	if !sq.InBounds() {
		return NoSquare, &errors.ParseError{Err: errors.ErrOutOfBounds, Expected: "square a1-h8", Got: s}
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed tables and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// InBounds reports whether the square lies on the 8x8 grid.
func (s Square) InBounds() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// Index returns the 0..63 index of the square (a1 = 0, h8 = 63).
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// Add applies an offset. Landing off the board yields ErrOutOfBounds;
// the result is never clamped.
func (s Square) Add(o Offset) (Square, error) {
	return NewSquare(s.Col+o.Col, s.Row+o.Row)
}

// To returns the offset that leads from s to other.
func (s Square) To(other Square) Offset {
	return Offset{Col: other.Col - s.Col, Row: other.Row - s.Row}
}

// String returns algebraic notation, or "-" for an off-board square.
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + s.Row)})
}

// MarshalText encodes the square in algebraic notation.
func (s Square) MarshalText() ([]byte, error) {
	if !s.InBounds() {
		return nil, errors.Wrapf(errors.ErrOutOfBounds, "square (%d, %d)", s.Col, s.Row)
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes algebraic notation.
func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// Scale multiplies the offset by n.
func (o Offset) Scale(n int) Offset {
	return Offset{Col: o.Col * n, Row: o.Row * n}
}

// String returns the offset as "(col,row)".
func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.Col, o.Row)
}
