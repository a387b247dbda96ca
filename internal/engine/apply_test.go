package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestEnPassant_OfferedAfterDoubleStep(t *testing.T) {
	g := NewGameWithConfig(quietConfig())
	play(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	testutil.AssertEqual(t, legalFrom(t, g, "e5"), []string{"d6", "e6"})

	d6 := g.LegalDestinations(chess.White)[testutil.Sq("d6")]
	if len(d6) != 1 || d6[0].Type != movegen.EnPassant {
		t.Fatalf("d6 records = %v; want one en passant", d6)
	}
	if d6[0].Query != testutil.Sq("d5") {
		t.Errorf("en passant query = %v; want d5", d6[0].Query)
	}

	play(t, g, "e5d6")
	if _, ok := g.PieceAt(testutil.Sq("d5")); ok {
		t.Error("the passed pawn on d5 should be captured")
	}
	got, _ := g.PieceAt(testutil.Sq("d6"))
	testutil.AssertEqual(t, got, PieceView{chess.Pawn, chess.White})
	testutil.AssertEqual(t, len(boardSnapshot(g)), 31)
}

func TestEnPassant_OnlyForTheAdvancingSide(t *testing.T) {
	g := NewGameWithConfig(quietConfig())
	play(t, g, "e2e4")

	for _, records := range g.PseudoLegalDestinations(chess.Black) {
		for _, mv := range records {
			if mv.Type == movegen.EnPassant {
				t.Errorf("black has an en passant record after a white double step: %+v", mv)
			}
		}
	}

	// A white pawn next to a black pawn that did not double step gets nothing.
	play(t, g, "d7d5")
	for _, mv := range g.PseudoLegalDestinations(chess.White)[testutil.Sq("d5")] {
		if mv.Type != movegen.Capture {
			t.Errorf("d5 record type = %v; want a plain capture", mv.Type)
		}
	}
}

func TestEnPassant_ExpiresAfterOneMove(t *testing.T) {
	g := NewGameWithConfig(quietConfig())
	play(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3", "a6a5")

	testutil.AssertEqual(t, legalFrom(t, g, "e5"), []string{"e6"})
}

func TestCastling_AppliesRookMove(t *testing.T) {
	tests := []struct {
		name      string
		move      string
		king      string
		rook      string
		emptied   []string
		castleDst string
	}{
		{"king side", "e1g1", "g1", "f1", []string{"e1", "h1"}, "g1"},
		{"queen side", "e1c1", "c1", "d1", []string{"e1", "a1", "b1"}, "c1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameOf(t, "Ke1 Ra1 Rh1 kd8")
			play(t, g, tt.move)

			king, _ := g.PieceAt(testutil.Sq(tt.king))
			rook, _ := g.PieceAt(testutil.Sq(tt.rook))
			testutil.AssertEqual(t, king, PieceView{chess.King, chess.White})
			testutil.AssertEqual(t, rook, PieceView{chess.Rook, chess.White})
			for _, sq := range tt.emptied {
				if _, ok := g.PieceAt(testutil.Sq(sq)); ok {
					t.Errorf("%s should be empty after castling", sq)
				}
			}

			log := g.SerializeMoves()
			testutil.AssertEqual(t, log[0].Type, movegen.Castle)
			testutil.AssertEqual(t, log[0].To.String(), tt.castleDst)
		})
	}
}

func TestPromotion(t *testing.T) {
	t.Run("by advancing", func(t *testing.T) {
		g := gameOf(t, "Ke1 Pb7* ra8 kh8")
		play(t, g, "b7b8")

		got, _ := g.PieceAt(testutil.Sq("b8"))
		testutil.AssertEqual(t, got, PieceView{chess.Queen, chess.White})

		// The new queen is indexed straight away.
		testutil.AssertTrue(t, contains(legalFrom(t, g, "b8"), "h2"), "queen on b8 should reach h2")
	})

	t.Run("by capturing", func(t *testing.T) {
		g := gameOf(t, "Ke1 Pb7* ra8 kh8")
		play(t, g, "b7a8")

		got, _ := g.PieceAt(testutil.Sq("a8"))
		testutil.AssertEqual(t, got, PieceView{chess.Queen, chess.White})
		testutil.AssertEqual(t, len(boardSnapshot(g)), 3)
	})

	t.Run("black promotes on the first rank", func(t *testing.T) {
		g := gameOf(t, "Ka1 pg2* ke8")
		moves, err := g.LegalMovesFrom(testutil.Sq("g2"))
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, g.Apply(moves[testutil.Sq("g1")], testutil.Sq("g1")))
		got, _ := g.PieceAt(testutil.Sq("g1"))
		testutil.AssertEqual(t, got, PieceView{chess.Queen, chess.Black})
		testutil.AssertTrue(t, g.IsInCheck(chess.White), "queen on g1 checks the king on a1")
	})
}

func TestApply_Errors(t *testing.T) {
	t.Run("record from another game", func(t *testing.T) {
		g := NewGameWithConfig(quietConfig())
		other := NewGameWithConfig(quietConfig())
		mv := other.LegalDestinations(chess.White)[testutil.Sq("e4")][0]

		err := g.Apply(mv, testutil.Sq("e4"))
		testutil.AssertErrorIs(t, err, chesserrors.ErrNoPieceAtSource)
		testutil.AssertEqual(t, g.Ply(), 0)
		if _, ok := g.PieceAt(testutil.Sq("e2")); !ok {
			t.Error("a rejected move must not change the board")
		}
	})

	t.Run("nil record", func(t *testing.T) {
		g := NewGameWithConfig(quietConfig())
		testutil.AssertErrorIs(t, g.Apply(nil, testutil.Sq("e4")), chesserrors.ErrNoPieceAtSource)
	})

	t.Run("blocked record", func(t *testing.T) {
		g := NewGameWithConfig(quietConfig())
		var blocked *movegen.Move
		for _, mv := range g.PseudoLegalDestinations(chess.White)[testutil.Sq("b2")] {
			if mv.Responding.Kind == chess.Rook {
				continue
			}
			blocked = mv
		}
		if blocked == nil {
			t.Fatal("no record for b2")
		}

		err := g.Apply(blocked, testutil.Sq("b2"))
		testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
		var moveErr *chesserrors.MoveError
		if !chesserrors.As(err, &moveErr) || moveErr.Ply != 1 {
			t.Errorf("error = %v; want a MoveError at ply 1", err)
		}
	})
}

func TestApply_TrustsCallerUnlessStrict(t *testing.T) {
	layout := "Ke1 Be2 re8 ka8"
	pinned := func(g *GameState) *movegen.Move {
		return g.PseudoLegalDestinations(chess.White)[testutil.Sq("d3")][0]
	}

	g := gameOf(t, layout)
	testutil.AssertNoError(t, g.Apply(pinned(g), testutil.Sq("d3")))
	testutil.AssertTrue(t, g.IsInCheck(chess.White), "the unchecked move exposes the king")

	strictCfg := config.NewConfigBuilder().WithVerbosity(0).WithStrictApply(true).Build()
	strict, err := NewGameFromSetup(setupOf(t, layout), strictCfg)
	testutil.AssertNoError(t, err)
	err = strict.Apply(pinned(strict), testutil.Sq("d3"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertEqual(t, strict.Ply(), 0)

	king := strict.LegalDestinations(chess.White)[testutil.Sq("d2")][0]
	testutil.AssertNoError(t, strict.Apply(king, testutil.Sq("d2")), "legal moves pass strict mode")
}

func TestMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     error
	}{
		{"empty square", "e4", "e5", chesserrors.ErrNoPieceAtSource},
		{"opponent's piece", "e7", "e5", chesserrors.ErrIllegalMove},
		{"unreachable square", "e2", "e5", chesserrors.ErrIllegalMove},
		{"blocked by own piece", "a1", "a3", chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGameWithConfig(quietConfig())
			err := g.Move(testutil.Sq(tt.from), testutil.Sq(tt.to))
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertEqual(t, g.Ply(), 0)
		})
	}
}

func TestApply_CompactsCapturedPieces(t *testing.T) {
	g := NewGameWithConfig(quietConfig())
	play(t, g, "e2e4", "d7d5", "e4d5")

	testutil.AssertEqual(t, len(g.pieces), 31)
	testutil.AssertEqual(t, len(g.byID), 31)
	for _, p := range g.pieces {
		if !p.OnBoard() {
			t.Errorf("captured %v still in the active set", p)
		}
		testutil.AssertEqual(t, g.board.Find(p.ID), p.Position, "board mirrors %v", p)
	}
}

func TestApply_Logging(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithVerbosity(2).WithLog(&buf).Build()
	g := NewGameWithConfig(cfg)

	play(t, g, "e2e4", "d7d5", "e4d5")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, lines, []string{
		"ply 1: Pawn e2e4",
		"ply 2: Pawn d7d5",
		"captured Black Pawn",
		"ply 3: Pawn e4d5",
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
