package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Policy selects how an occupied square affects a path.
type Policy int

const (
	// PolicyStandard serves sliding pieces, the knight and the king's single
	// steps: enemies are captured, friends block, and every square behind
	// either sits one level deeper.
	PolicyStandard Policy = iota

	// PolicyPawnMove is a forward pawn step. Any occupant blocks it.
	PolicyPawnMove

	// PolicyPawnCapture is a diagonal pawn step. It only lands on an enemy.
	PolicyPawnCapture

	// PolicyEnPassant captures the pawn beside the mover, which must be the
	// mover's recorded en passant target.
	PolicyEnPassant

	// PolicyCastle queries the rook's square on behalf of the king.
	PolicyCastle
)

// String returns the policy name.
func (p Policy) String() string {
	names := []string{"Standard", "PawnMove", "PawnCapture", "EnPassant", "Castle"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Probe is what the validator found on one queried square.
type Probe struct {
	Occupant *Piece

	// Clear is set when no piece stands strictly between the mover and the
	// queried square. Only PolicyCastle reads it.
	Clear bool
}

// Accumulator is the state threaded along a single path.
type Accumulator struct {
	Level int
	Last  MoveType
}

// Step folds one probed square into the accumulator and returns the record
// for that square. The record's Query is left for the caller to fill in.
func (a Accumulator) Step(policy Policy, mover *Piece, probe Probe) (Accumulator, *Move) {
	if policy != PolicyCastle {
		a = a.settle()
	}

	occ := probe.Occupant
	mv := &Move{Responding: mover, Contesting: occ}

	switch policy {
	case PolicyStandard:
		switch {
		case mover.Enemy(occ):
			a = a.capture(mv, Capture)
		case mover.Friendly(occ):
			a = a.block(mv)
		default:
			a = a.free(mv)
		}

	case PolicyPawnMove:
		if occ != nil {
			a = a.block(mv)
		} else {
			a = a.free(mv)
		}

	case PolicyPawnCapture:
		if mover.Enemy(occ) {
			a = a.capture(mv, Capture)
		} else {
			a = a.block(mv)
		}

	case PolicyEnPassant:
		if mover.Enemy(occ) && occ.Kind == mover.Kind && mover.HasEnPassantTarget() &&
			occ.Position == mover.EnPassantTarget {
			a = a.capture(mv, EnPassant)
		} else {
			a = a.block(mv)
		}

	case PolicyCastle:
		if castleable(mover, occ) && probe.Clear {
			mv.Type = Castle
			mv.Movable = true
			a.Last = Castle
		} else {
			a = a.block(mv)
		}
	}

	mv.Level = a.Level
	return a, mv
}

// settle closes the previous square: whatever follows a capture is one
// level deeper. A block has already raised the level itself.
func (a Accumulator) settle() Accumulator {
	if a.Last == Capture || a.Last == EnPassant {
		a.Level++
	}
	a.Last = Free
	return a
}

func (a Accumulator) free(mv *Move) Accumulator {
	mv.Type = Free
	mv.Movable = true
	a.Last = Free
	return a
}

func (a Accumulator) capture(mv *Move, t MoveType) Accumulator {
	mv.Type = t
	mv.Capturable = true
	a.Last = t
	return a
}

func (a Accumulator) block(mv *Move) Accumulator {
	mv.Type = Blocked
	a.Level++
	a.Last = Blocked
	return a
}

func castleable(king, rook *Piece) bool {
	return king.Friendly(rook) && rook.Kind == chess.Rook && !rook.Moved && !king.Moved
}
