package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// LogEntry is one applied move. It holds enough to replay the move against
// the position it was played from.
type LogEntry struct {
	From chess.Square     `json:"from"`
	To   chess.Square     `json:"to"`
	Type movegen.MoveType `json:"type"`
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (e LogEntry) String() string {
	return e.From.String() + e.To.String()
}

// MoveLog is the ordered list of applied moves.
type MoveLog []LogEntry

// SerializeMoves returns a copy of the move log.
func (g *GameState) SerializeMoves() MoveLog {
	return append(MoveLog(nil), g.log...)
}

// Load replays log against the standard layout with default configuration.
func Load(log MoveLog) (*GameState, error) {
	return LoadFromSetup(StandardSetup(), log, config.NewConfig())
}

// LoadFromSetup replays log against setup. Each entry must name a piece on
// its From square that can reach To with the recorded move type; the first
// entry that cannot is reported as a MoveError wrapping ErrInvalidLog.
// Own-king safety is not re-checked.
func LoadFromSetup(setup Setup, log MoveLog, cfg *config.Config) (*GameState, error) {
	g, err := newGameState(setup, cfg)
	if err != nil {
		return nil, err
	}

	lazy := g.lazy
	g.lazy = true
	for _, entry := range log {
		if err := g.applyEntry(entry); err != nil {
			return nil, err
		}
	}
	g.lazy = lazy
	if !g.lazy {
		g.rebuild()
	}

	g.cfg.Logf(2, "replayed %d moves", len(log))
	return g, nil
}

// Replay reconstructs this game's starting position and replays log on it.
func (g *GameState) Replay(log MoveLog) (*GameState, error) {
	return LoadFromSetup(g.setup, log, g.cfg)
}

// Undo returns a new game with the last move taken back. The receiver is
// not modified. Undoing at the initial position returns a fresh copy of it.
func (g *GameState) Undo() (*GameState, error) {
	n := len(g.log)
	if n > 0 {
		n--
	}
	g.cfg.Logf(2, "undo to ply %d", n)
	return g.Replay(g.log[:n])
}
