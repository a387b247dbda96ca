// Package chess provides core chess types: colours, piece kinds, squares,
// the board placement grid and line-of-sight offset generation.
package chess

import "github.com/lgbarn/chess-rules-go/internal/errors"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both players, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// MarshalText encodes the colour as "white" or "black".
func (c Colour) MarshalText() ([]byte, error) {
	if c == White {
		return []byte("white"), nil
	}
	return []byte("black"), nil
}

// UnmarshalText decodes "white" or "black" (case-sensitive).
func (c *Colour) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidNotation, Expected: "white or black", Got: string(text)}
	}
	return nil
}

// Piece represents a chess piece kind.
type Piece int

const (
	Empty Piece = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRow returns the back rank row index for the colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PromotionRow returns the row on which a pawn of the colour promotes.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}
