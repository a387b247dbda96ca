// Package engine owns the live state of a chess game: it applies moves,
// maintains the per-player destinations index, detects check and filters
// pseudo-legal moves into legal ones by replaying the move log.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// PieceView is the read-only description of an occupant, for rendering.
type PieceView struct {
	Kind  chess.Piece
	Owner chess.Colour
}

// GameState is a single game. It is not safe for concurrent use.
type GameState struct {
	cfg    *config.Config
	simCfg *config.Config

	setup  Setup
	board  *chess.Board
	pieces []*movegen.Piece
	byID   map[chess.PieceID]*movegen.Piece
	nextID chess.PieceID

	log MoveLog

	destinations map[chess.Colour]Destinations
	lazy         bool
	stale        bool
}

// NewGame starts a game from the standard layout with default configuration.
func NewGame() *GameState {
	return NewGameWithConfig(config.NewConfig())
}

// NewGameWithConfig starts a game from the standard layout.
func NewGameWithConfig(cfg *config.Config) *GameState {
	g, err := NewGameFromSetup(StandardSetup(), cfg)
	if err != nil {
		// The standard layout is fixed and always valid.
		panic(err)
	}
	return g
}

// NewGameFromSetup starts a game from an arbitrary placement. Undo, Load
// and move simulation all restart from this placement.
func NewGameFromSetup(setup Setup, cfg *config.Config) (*GameState, error) {
	g, err := newGameState(setup, cfg)
	if err != nil {
		return nil, err
	}
	g.reindex()
	return g, nil
}

// newGameState places the pieces without building the destinations index.
func newGameState(setup Setup, cfg *config.Config) (*GameState, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	simCfg := cfg.Silent()
	simCfg.Engine.ReplayOnly = true

	g := &GameState{
		cfg:    cfg,
		simCfg: simCfg,
		setup:  setup.Copy(),
		board:  chess.NewBoard(),
		pieces: make([]*movegen.Piece, 0, len(setup)),
		byID:   make(map[chess.PieceID]*movegen.Piece, len(setup)),
		lazy:   cfg.Engine != nil && cfg.Engine.ReplayOnly,
		stale:  true,
	}
	for _, pl := range setup {
		p := g.newPiece(pl.Kind, pl.Owner, pl.Square)
		p.Moved = pl.Moved
		g.pieces = append(g.pieces, p)
	}
	return g, nil
}

func (g *GameState) newPiece(kind chess.Piece, owner chess.Colour, sq chess.Square) *movegen.Piece {
	g.nextID++
	p := movegen.NewPiece(g.nextID, kind, owner, sq)
	g.byID[p.ID] = p
	_ = g.board.Set(sq, p.ID)
	return p
}

// lookup resolves a square through the board's identifier to the live piece.
func (g *GameState) lookup(sq chess.Square) *movegen.Piece {
	id, err := g.board.At(sq)
	if err != nil || id == chess.NoPiece {
		return nil
	}
	return g.byID[id]
}

// PieceAt describes the occupant of sq. The bool is false for an empty or
// off-board square.
func (g *GameState) PieceAt(sq chess.Square) (PieceView, bool) {
	p := g.lookup(sq)
	if p == nil {
		return PieceView{}, false
	}
	return PieceView{Kind: p.Kind, Owner: p.Owner}, true
}

// ToMove returns the player whose turn it is, counting from White.
func (g *GameState) ToMove() chess.Colour {
	if len(g.log)%2 == 0 {
		return chess.White
	}
	return chess.Black
}

// Ply returns the number of moves applied so far.
func (g *GameState) Ply() int {
	return len(g.log)
}

// Setup returns the placement this game started from.
func (g *GameState) Setup() Setup {
	return g.setup.Copy()
}

// Config returns the configuration the game was created with.
func (g *GameState) Config() *config.Config {
	return g.cfg
}

// king returns the player's king, or nil when the setup has none.
func (g *GameState) king(player chess.Colour) *movegen.Piece {
	for _, p := range g.pieces {
		if p.Kind == chess.King && p.Owner == player && p.OnBoard() {
			return p
		}
	}
	return nil
}

// owns reports whether p is one of this game's live pieces.
func (g *GameState) owns(p *movegen.Piece) bool {
	return p != nil && g.byID[p.ID] == p && p.OnBoard()
}
