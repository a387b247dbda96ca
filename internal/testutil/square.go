package testutil

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sq parses algebraic notation, panicking on malformed input.
func Sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}

// SquareNames returns the sorted algebraic names of a square-keyed map.
func SquareNames[M ~map[chess.Square]V, V any](m M) []string {
	keys := maps.Keys(m)
	names := make([]string, 0, len(keys))
	for _, sq := range keys {
		names = append(names, sq.String())
	}
	slices.Sort(names)
	return names
}

// SquaresWhere returns the sorted names of the keys whose values satisfy keep.
func SquaresWhere[M ~map[chess.Square]V, V any](m M, keep func(V) bool) []string {
	var names []string
	for sq, v := range m {
		if keep(v) {
			names = append(names, sq.String())
		}
	}
	slices.Sort(names)
	return names
}
