package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CastleKingStep is how far the king travels towards the rook when castling.
const CastleKingStep = 2

// locate resolves an offset into the square the mover would land on and the
// square whose occupant decides the move. Either being off the board is
// reported as ErrOutOfBounds.
func locate(policy Policy, mover *Piece, o chess.Offset) (landing, query chess.Square, err error) {
	origin := mover.Position

	switch policy {
	case PolicyEnPassant:
		// The captured pawn stands beside the mover, one row short of the landing square.
		landing, err = origin.Add(o)
		if err != nil {
			return chess.NoSquare, chess.NoSquare, err
		}
		query, err = origin.Add(chess.Offset{Col: o.Col})
		return landing, query, err

	case PolicyCastle:
		// The offset points at the rook; the king stops two squares towards it.
		query, err = origin.Add(o)
		if err != nil {
			return chess.NoSquare, chess.NoSquare, err
		}
		landing, err = origin.Add(chess.Offset{Col: sign(o.Col) * CastleKingStep})
		return landing, query, err

	default:
		landing, err = origin.Add(o)
		return landing, landing, err
	}
}

// RookCastleSquare returns where the rook ends up when the king castles to
// kingTo from kingFrom: the square next to the king on the side it came from.
func RookCastleSquare(kingFrom, kingTo chess.Square) chess.Square {
	return chess.Square{Col: kingTo.Col - sign(kingTo.Col-kingFrom.Col), Row: kingTo.Row}
}

// between lists the squares strictly between a and b on a shared row.
func between(a, b chess.Square) []chess.Square {
	if a.Row != b.Row {
		return nil
	}
	step := sign(b.Col - a.Col)
	var squares []chess.Square
	for col := a.Col + step; col != b.Col; col += step {
		squares = append(squares, chess.Square{Col: col, Row: a.Row})
	}
	return squares
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
