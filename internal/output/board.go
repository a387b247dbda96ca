// Package output renders games for people and programs: board diagrams and
// text or JSON status reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PieceSource is anything that can say what stands on a square.
type PieceSource interface {
	PieceAt(sq chess.Square) (engine.PieceView, bool)
}

const emptySquare = "."

var figurines = map[chess.Colour][chess.NumPieceValues]string{
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// Symbol returns the letter for a piece, uppercase for White, or its
// figurine when unicode is set.
func Symbol(v engine.PieceView, unicode bool) string {
	if unicode {
		return figurines[v.Owner][v.Kind]
	}
	letter := string(v.Kind.Letter())
	if v.Owner == chess.Black {
		return strings.ToLower(letter)
	}
	return letter
}

// Ranks returns the board as eight strings, rank 8 first, one symbol per
// square and "." for empty squares.
func Ranks(src PieceSource, unicode bool) []string {
	ranks := make([]string, 0, chess.BoardSize)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			if v, ok := src.PieceAt(chess.Square{Col: col, Row: row}); ok {
				sb.WriteString(Symbol(v, unicode))
			} else {
				sb.WriteString(emptySquare)
			}
		}
		ranks = append(ranks, sb.String())
	}
	return ranks
}

// RenderBoard draws a diagram with rank numbers on the left and files
// underneath.
func RenderBoard(w io.Writer, src PieceSource, unicode bool) error {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		cells := make([]string, 0, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			cell := emptySquare
			if v, ok := src.PieceAt(chess.Square{Col: col, Row: row}); ok {
				cell = Symbol(v, unicode)
			}
			cells = append(cells, cell)
		}
		if _, err := fmt.Fprintf(w, "%c %s\n", chess.RankBase+row, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "  a b c d e f g h")
	return err
}
