package movegen

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPawn_ForwardNeverCaptures(t *testing.T) {
	board := testBoard{}
	pawn := board.put(chess.Pawn, chess.White, "e2")
	board.put(chess.Knight, chess.Black, "e3")

	moves := Generate(pawn, board.lookup)

	e3 := moves[testutil.Sq("e3")]
	if e3.Type != Blocked || e3.Legal() || e3.Capturable {
		t.Errorf("e3 = %+v; want blocked, not capturable", e3)
	}
	if moves[testutil.Sq("e4")].Legal() {
		t.Error("e4 must not be reachable through a blocked e3")
	}
	if got := testutil.SquaresWhere(moves, legal); len(got) != 0 {
		t.Errorf("legal squares = %v; want none", got)
	}
}

func TestPawn_DiagonalCaptures(t *testing.T) {
	board := testBoard{}
	pawn := board.put(chess.Pawn, chess.Black, "d7")
	enemy := board.put(chess.Bishop, chess.White, "c6")
	board.put(chess.Knight, chess.Black, "e6")

	moves := Generate(pawn, board.lookup)

	c6 := moves[testutil.Sq("c6")]
	if c6.Type != Capture || !c6.Capturable || c6.Movable || c6.Contesting != enemy || !c6.Legal() {
		t.Errorf("c6 = %+v; want a legal capture", c6)
	}

	e6 := moves[testutil.Sq("e6")]
	if e6.Type != Blocked || e6.Legal() {
		t.Errorf("e6 = %+v; want blocked by the friendly knight", e6)
	}

	testutil.AssertSameElements(t, testutil.SquaresWhere(moves, legal), []string{"c6", "d6", "d5"})
}

func TestPawn_EmptyDiagonalIsNotAMove(t *testing.T) {
	board := testBoard{}
	pawn := board.put(chess.Pawn, chess.White, "a2")

	moves := Generate(pawn, board.lookup)
	b3 := moves[testutil.Sq("b3")]
	if b3 == nil || b3.Legal() || b3.Type != Blocked {
		t.Errorf("b3 = %+v; want a blocked non-move", b3)
	}
	if _, ok := moves[chess.Square{Col: -1, Row: 2}]; ok {
		t.Error("off-board diagonal produced a record")
	}
}

func TestPawn_EnPassant(t *testing.T) {
	board := testBoard{}
	pawn := board.put(chess.Pawn, chess.White, "e5")
	pawn.Moved = true
	victim := board.put(chess.Pawn, chess.Black, "d5")
	victim.Moved = true
	board.put(chess.Pawn, chess.Black, "f5")

	t.Run("no target, no en passant", func(t *testing.T) {
		moves := Generate(pawn, board.lookup)
		d6 := moves[testutil.Sq("d6")]
		if d6.Legal() {
			t.Errorf("d6 = %+v; want no en passant without a target", d6)
		}
	})

	t.Run("target offers only the matching side", func(t *testing.T) {
		pawn.EnPassantTarget = victim.Position
		defer func() { pawn.EnPassantTarget = chess.NoSquare }()

		moves := Generate(pawn, board.lookup)

		d6 := moves[testutil.Sq("d6")]
		if d6.Type != EnPassant || !d6.Capturable || d6.Contesting != victim || d6.Level != 0 {
			t.Errorf("d6 = %+v; want en passant capturing d5", d6)
		}
		if d6.Query != testutil.Sq("d5") {
			t.Errorf("d6 query = %v; want d5", d6.Query)
		}

		f6 := moves[testutil.Sq("f6")]
		if f6.Legal() {
			t.Errorf("f6 = %+v; want blocked: f5 is not the recorded target", f6)
		}

		testutil.AssertSameElements(t, testutil.SquaresWhere(moves, legal), []string{"d6", "e6"})
	})
}

func TestKing_CastlingCandidates(t *testing.T) {
	setup := func() (testBoard, *Piece, *Piece, *Piece) {
		board := testBoard{}
		king := board.put(chess.King, chess.White, "e1")
		queenRook := board.put(chess.Rook, chess.White, "a1")
		kingRook := board.put(chess.Rook, chess.White, "h1")
		return board, king, queenRook, kingRook
	}

	castles := func(moves Moves) []string {
		return testutil.SquaresWhere(moves, func(mv *Move) bool { return mv.Type == Castle && mv.Legal() })
	}

	t.Run("both sides open", func(t *testing.T) {
		board, king, queenRook, kingRook := setup()
		moves := Generate(king, board.lookup)
		testutil.AssertEqual(t, castles(moves), []string{"c1", "g1"})

		if g1 := moves[testutil.Sq("g1")]; g1.Contesting != kingRook || g1.Query != testutil.Sq("h1") {
			t.Errorf("g1 = %+v; want the h1 rook as contesting piece", g1)
		}
		if c1 := moves[testutil.Sq("c1")]; c1.Contesting != queenRook {
			t.Errorf("c1 = %+v; want the a1 rook as contesting piece", c1)
		}
	})

	t.Run("moved rook", func(t *testing.T) {
		board, king, _, kingRook := setup()
		kingRook.Moved = true
		moves := Generate(king, board.lookup)
		testutil.AssertEqual(t, castles(moves), []string{"c1"})
		if g1 := moves[testutil.Sq("g1")]; g1 == nil || g1.Type != Blocked {
			t.Errorf("g1 = %+v; want blocked", g1)
		}
	})

	t.Run("moved king", func(t *testing.T) {
		board, king, _, _ := setup()
		king.Moved = true
		testutil.AssertEqual(t, len(castles(Generate(king, board.lookup))), 0)
	})

	t.Run("piece between king and rook", func(t *testing.T) {
		board, king, _, _ := setup()
		board.put(chess.Knight, chess.White, "b1")
		testutil.AssertEqual(t, castles(Generate(king, board.lookup)), []string{"g1"})
	})

	t.Run("enemy piece between king and rook", func(t *testing.T) {
		board, king, _, _ := setup()
		board.put(chess.Bishop, chess.Black, "f1")
		testutil.AssertEqual(t, castles(Generate(king, board.lookup)), []string{"c1"})
	})

	t.Run("no rook in the corner", func(t *testing.T) {
		board, king, queenRook, _ := setup()
		delete(board, queenRook.Position)
		testutil.AssertEqual(t, castles(Generate(king, board.lookup)), []string{"g1"})
	})

	t.Run("black castles on rank 8", func(t *testing.T) {
		board := testBoard{}
		king := board.put(chess.King, chess.Black, "e8")
		board.put(chess.Rook, chess.Black, "h8")
		board.put(chess.Rook, chess.White, "a8")
		testutil.AssertEqual(t, castles(Generate(king, board.lookup)), []string{"g8"})
	})
}

func TestRookCastleSquare(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"e1", "g1", "f1"},
		{"e1", "c1", "d1"},
		{"e8", "g8", "f8"},
		{"e8", "c8", "d8"},
	}
	for _, tt := range tests {
		got := RookCastleSquare(testutil.Sq(tt.from), testutil.Sq(tt.to))
		if got.String() != tt.want {
			t.Errorf("RookCastleSquare(%s, %s) = %v; want %s", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAccumulator_Transitions(t *testing.T) {
	mover := NewPiece(1, chess.Rook, chess.White, testutil.Sq("a1"))
	enemy := NewPiece(2, chess.Pawn, chess.Black, testutil.Sq("a3"))
	friend := NewPiece(3, chess.Pawn, chess.White, testutil.Sq("a5"))

	steps := []struct {
		occupant  *Piece
		wantType  MoveType
		wantLevel int
	}{
		{nil, Free, 0},
		{enemy, Capture, 0},
		{nil, Free, 1},
		{friend, Blocked, 2},
		{nil, Free, 2},
		{enemy, Capture, 2},
		{enemy, Capture, 3},
	}

	var acc Accumulator
	for i, s := range steps {
		var mv *Move
		acc, mv = acc.Step(PolicyStandard, mover, Probe{Occupant: s.occupant})
		if mv.Type != s.wantType || mv.Level != s.wantLevel {
			t.Errorf("step %d: got %v at level %d; want %v at level %d", i, mv.Type, mv.Level, s.wantType, s.wantLevel)
		}
	}
}

func TestAccumulator_CastleRequiresClearPath(t *testing.T) {
	king := NewPiece(1, chess.King, chess.White, testutil.Sq("e1"))
	rook := NewPiece(2, chess.Rook, chess.White, testutil.Sq("h1"))

	_, mv := Accumulator{}.Step(PolicyCastle, king, Probe{Occupant: rook, Clear: false})
	if mv.Type != Blocked {
		t.Errorf("obstructed castle = %v; want blocked", mv.Type)
	}

	_, mv = Accumulator{}.Step(PolicyCastle, king, Probe{Occupant: rook, Clear: true})
	if mv.Type != Castle || !mv.Movable || mv.Capturable {
		t.Errorf("clear castle = %+v; want a movable castle", mv)
	}

	knight := NewPiece(3, chess.Knight, chess.White, testutil.Sq("h1"))
	_, mv = Accumulator{}.Step(PolicyCastle, king, Probe{Occupant: knight, Clear: true})
	if mv.Type != Blocked {
		t.Errorf("castle with a knight in the corner = %v; want blocked", mv.Type)
	}
}

func TestMoveTypeText(t *testing.T) {
	for _, mt := range []MoveType{Free, Blocked, Capture, EnPassant, Castle} {
		text, err := mt.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", mt, err)
		}
		var back MoveType
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) error: %v", text, err)
		}
		if back != mt {
			t.Errorf("round trip %v -> %s -> %v", mt, text, back)
		}
	}

	var mt MoveType
	if err := mt.UnmarshalText([]byte("teleport")); err == nil {
		t.Error("UnmarshalText(teleport) succeeded; want error")
	}
}
