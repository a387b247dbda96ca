package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pathFunc produces the raw paths a piece kind can attempt from its square.
type pathFunc func(p *Piece, lookup Lookup) []Path

var pathFuncs = map[chess.Piece]pathFunc{
	chess.Pawn:   pawnPaths,
	chess.Knight: knightPaths,
	chess.Bishop: bishopPaths,
	chess.Rook:   rookPaths,
	chess.Queen:  queenPaths,
	chess.King:   kingPaths,
}

var knightOffsets = []chess.Offset{
	{Col: 1, Row: 2}, {Col: 2, Row: 1}, {Col: 2, Row: -1}, {Col: 1, Row: -2},
	{Col: -1, Row: -2}, {Col: -2, Row: -1}, {Col: -2, Row: 1}, {Col: -1, Row: 2},
}

var kingOffsets = func() []chess.Offset {
	offsets := make([]chess.Offset, 0, 8)
	for _, dir := range chess.CardinalDirections {
		offsets = append(offsets, dir.Step())
	}
	for _, dir := range chess.DiagonalDirections {
		offsets = append(offsets, dir.Step())
	}
	return offsets
}()

// Paths returns the raw offset paths for p. Captured pieces have none.
func Paths(p *Piece, lookup Lookup) []Path {
	fn, ok := pathFuncs[p.Kind]
	if !ok || !p.OnBoard() {
		return nil
	}
	return fn(p, lookup)
}

func slidingPaths(p *Piece, dirs []chess.Direction) []Path {
	paths := make([]Path, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, Path{Policy: PolicyStandard, Offsets: chess.Offsets(p.Position, dir)})
	}
	return paths
}

func singleStepPaths(policy Policy, offsets []chess.Offset) []Path {
	paths := make([]Path, 0, len(offsets))
	for _, o := range offsets {
		paths = append(paths, Path{Policy: policy, Offsets: []chess.Offset{o}})
	}
	return paths
}

func bishopPaths(p *Piece, _ Lookup) []Path {
	return slidingPaths(p, chess.DiagonalDirections)
}

func rookPaths(p *Piece, _ Lookup) []Path {
	return slidingPaths(p, chess.CardinalDirections)
}

func queenPaths(p *Piece, lookup Lookup) []Path {
	return append(bishopPaths(p, lookup), rookPaths(p, lookup)...)
}

func knightPaths(_ *Piece, _ Lookup) []Path {
	return singleStepPaths(PolicyStandard, knightOffsets)
}

func kingPaths(p *Piece, lookup Lookup) []Path {
	return append(singleStepPaths(PolicyStandard, kingOffsets), castlePaths(p, lookup)...)
}

// castlePaths offers one candidate per friendly rook standing in a corner of
// the king's home row. The validator decides whether it can be taken.
func castlePaths(king *Piece, lookup Lookup) []Path {
	row := chess.HomeRow(king.Owner)
	if king.Moved || king.Position.Row != row {
		return nil
	}

	var paths []Path
	for _, col := range []int{0, chess.BoardSize - 1} {
		corner := chess.Square{Col: col, Row: row}
		rook := occupant(lookup, corner)
		if !king.Friendly(rook) || rook.Kind != chess.Rook {
			continue
		}
		paths = append(paths, Path{Policy: PolicyCastle, Offsets: []chess.Offset{king.Position.To(corner)}})
	}
	return paths
}

// pawnPaths returns the forward path (two squares until the pawn has moved),
// the two diagonal capture steps and, when a target is recorded, the two en
// passant steps.
func pawnPaths(p *Piece, _ Lookup) []Path {
	dir := chess.ColourOffset(p.Owner)

	forward := []chess.Offset{{Row: dir}}
	if !p.Moved {
		forward = append(forward, chess.Offset{Row: 2 * dir})
	}

	paths := []Path{{Policy: PolicyPawnMove, Offsets: forward}}
	diagonals := []chess.Offset{{Col: -1, Row: dir}, {Col: 1, Row: dir}}
	paths = append(paths, singleStepPaths(PolicyPawnCapture, diagonals)...)
	if p.HasEnPassantTarget() {
		paths = append(paths, singleStepPaths(PolicyEnPassant, diagonals)...)
	}
	return paths
}
