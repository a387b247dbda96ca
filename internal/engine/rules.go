package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status summarises a player's situation.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for _, st := range []Status{Ongoing, Check, Checkmate, Stalemate} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return &errors.ParseError{Err: errors.ErrInvalidNotation, Expected: "game status", Got: string(text)}
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s == Checkmate || s == Stalemate
}

// Status reports whether the player is in check, checkmated or stalemated.
func (g *GameState) Status(player chess.Colour) Status {
	inCheck := g.IsInCheck(player)
	canMove := g.HasLegalMove(player)
	switch {
	case canMove && inCheck:
		return Check
	case canMove:
		return Ongoing
	case inCheck:
		return Checkmate
	default:
		return Stalemate
	}
}
