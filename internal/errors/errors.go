// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate or notation outside the 8x8 grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrNoPieceAtSource indicates a move attempted from an empty square.
	ErrNoPieceAtSource = errors.New("no piece at source")

	// ErrIllegalMove indicates a move that is not among the legal destinations.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidLog indicates a move log entry that cannot be replayed.
	ErrInvalidLog = errors.New("invalid move log")

	// ErrInvalidNotation indicates malformed algebraic or move notation.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context, including the ply in the
// move log and the squares involved. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply in the move log (0 if not applicable)
	From     string // Source square in algebraic notation (if known)
	To       string // Destination square in algebraic notation (if known)
	MoveType string // Move classification, e.g. "castle" (if known)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", orDash(e.From), orDash(e.To)))
	}

	if e.MoveType != "" {
		parts = append(parts, e.MoveType)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

func orDash(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// ParseError reports text that could not be read as a square, a move or a
// saved game.
type ParseError struct {
	Err      error
	File     string // Saved-game file, if any
	Token    int    // 1-based index of the offending token in a move list
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	if e.Token > 0 {
		fmt.Fprintf(&sb, "token %d: ", e.Token)
	}
	switch {
	case e.Expected != "" && e.Got != "":
		fmt.Fprintf(&sb, "expected %s, got %q: ", e.Expected, e.Got)
	case e.Expected != "":
		fmt.Fprintf(&sb, "expected %s: ", e.Expected)
	case e.Got != "":
		fmt.Fprintf(&sb, "unexpected %q: ", e.Got)
	}

	if e.Err == nil {
		if sb.Len() == 0 {
			return "parse error"
		}
		return strings.TrimSuffix(sb.String(), ": ")
	}
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It mirrors the standard library so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
