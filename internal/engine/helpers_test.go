package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var pieceLetters = map[byte]chess.Piece{
	'P': chess.Pawn, 'N': chess.Knight, 'B': chess.Bishop,
	'R': chess.Rook, 'Q': chess.Queen, 'K': chess.King,
}

// setupOf builds a placement from tokens like "Ke1 Rh1* ke8": uppercase is
// White, lowercase Black, and a trailing '*' marks the piece as moved.
func setupOf(t testing.TB, layout string) Setup {
	t.Helper()
	var setup Setup
	for _, tok := range strings.Fields(layout) {
		pl := Placement{Owner: chess.White}
		if strings.HasSuffix(tok, "*") {
			pl.Moved = true
			tok = strings.TrimSuffix(tok, "*")
		}
		letter := tok[0]
		if letter >= 'a' && letter <= 'z' {
			pl.Owner = chess.Black
			letter -= 'a' - 'A'
		}
		kind, ok := pieceLetters[letter]
		if !ok || len(tok) != 3 {
			t.Fatalf("bad layout token %q", tok)
		}
		pl.Kind = kind
		pl.Square = testutil.Sq(tok[1:])
		setup = append(setup, pl)
	}
	return setup
}

// quietConfig never logs.
func quietConfig() *config.Config {
	return config.NewConfigBuilder().WithVerbosity(0).Build()
}

func gameOf(t testing.TB, layout string) *GameState {
	t.Helper()
	g, err := NewGameFromSetup(setupOf(t, layout), quietConfig())
	testutil.AssertNoError(t, err, "NewGameFromSetup(%q)", layout)
	return g
}

// play applies moves like "e2e4" with Move, failing the test on error.
func play(t testing.TB, g *GameState, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to := testutil.Sq(m[:2]), testutil.Sq(m[2:4])
		if err := g.Move(from, to); err != nil {
			t.Fatalf("Move(%s) at ply %d: %v", m, g.Ply()+1, err)
		}
	}
}

// moveNames renders a move list as "e2e4" strings.
func moveNames(list MoveLog) []string {
	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.String())
	}
	return names
}

// legalFrom returns the sorted legal destinations of the piece on sq.
func legalFrom(t testing.TB, g *GameState, sq string) []string {
	t.Helper()
	moves, err := g.LegalMovesFrom(testutil.Sq(sq))
	testutil.AssertNoError(t, err, "LegalMovesFrom(%s)", sq)
	return testutil.SquareNames(moves)
}

// boardSnapshot lists every occupied square with its occupant.
func boardSnapshot(g *GameState) map[string]PieceView {
	snap := make(map[string]PieceView)
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			sq := chess.Square{Col: col, Row: row}
			if v, ok := g.PieceAt(sq); ok {
				snap[sq.String()] = v
			}
		}
	}
	return snap
}
