package movegen

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveType classifies a reachable square.
type MoveType int

const (
	Free MoveType = iota
	Blocked
	Capture
	EnPassant
	Castle
)

var moveTypeNames = []string{"free", "blocked", "capture", "en_passant", "castle"}

// String returns the move type name.
func (t MoveType) String() string {
	if int(t) >= 0 && int(t) < len(moveTypeNames) {
		return moveTypeNames[t]
	}
	return "unknown"
}

// MarshalText encodes the move type by name.
func (t MoveType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a move type name.
func (t *MoveType) UnmarshalText(text []byte) error {
	for i, name := range moveTypeNames {
		if name == string(text) {
			*t = MoveType(i)
			return nil
		}
	}
	return &errors.ParseError{Err: errors.ErrInvalidNotation, Expected: "move type", Got: string(text)}
}

// Move is the classified record for one reachable square.
type Move struct {
	Type MoveType

	// Contesting is the piece found on the queried square, if any.
	Contesting *Piece

	// Level counts the occupied squares passed through to get here.
	// Only level 0 squares can actually be moved to.
	Level int

	// Capturable is set when landing here captures Contesting.
	Capturable bool

	// Movable is set when landing here is a non-capturing move.
	Movable bool

	// Responding is the piece that generated this record.
	Responding *Piece

	// Query is the square that was inspected. It differs from the landing
	// square for en passant (the passed pawn) and castling (the rook).
	Query chess.Square
}

// Legal reports whether the record describes a real move, before own-king
// safety is considered.
func (m *Move) Legal() bool {
	return m.Level == 0 && (m.Movable || m.Capturable)
}

// Attacks reports whether the record threatens to capture on its square.
func (m *Move) Attacks() bool {
	return m.Level == 0 && m.Capturable
}

// Moves maps each reachable landing square to its record.
type Moves map[chess.Square]*Move

// merge adds other into m. When two paths reach the same square the
// record that is a real move wins, then the lower level.
func (m Moves) merge(other Moves) {
	for sq, mv := range other {
		existing, ok := m[sq]
		if !ok || prefer(mv, existing) {
			m[sq] = mv
		}
	}
}

func prefer(candidate, existing *Move) bool {
	if candidate.Legal() != existing.Legal() {
		return candidate.Legal()
	}
	return candidate.Level < existing.Level
}
