package output

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Report is the state of one game as shown to the user.
type Report struct {
	Name   string         `json:"name,omitempty"`
	Ply    int            `json:"ply"`
	ToMove chess.Colour   `json:"toMove"`
	Status engine.Status  `json:"status"`
	Moves  engine.MoveLog `json:"moves"`
	Board  []string       `json:"board,omitempty"`

	// Legal maps each origin square of the side to move to its sorted
	// destinations.
	Legal map[string][]string `json:"legal,omitempty"`

	// Error is set when the game could not be loaded or played.
	Error string `json:"error,omitempty"`
}

// BuildReport summarises g. The board and legal moves are included when
// the output configuration asks for them.
func BuildReport(name string, g *engine.GameState, cfg *config.OutputConfig) *Report {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	toMove := g.ToMove()
	r := &Report{
		Name:   name,
		Ply:    g.Ply(),
		ToMove: toMove,
		Status: g.Status(toMove),
		Moves:  g.SerializeMoves(),
	}
	if r.Moves == nil {
		r.Moves = engine.MoveLog{}
	}
	if cfg.ShowBoard {
		r.Board = Ranks(g, cfg.Unicode)
	}
	if cfg.ShowLegalMoves {
		r.Legal = groupByOrigin(g.LegalMoveList(toMove))
	}
	return r
}

// ErrorReport describes a game that failed to load.
func ErrorReport(name string, err error) *Report {
	return &Report{Name: name, ToMove: chess.White, Moves: engine.MoveLog{}, Error: err.Error()}
}

func groupByOrigin(list engine.MoveLog) map[string][]string {
	grouped := make(map[string][]string)
	for _, e := range list {
		from := e.From.String()
		grouped[from] = append(grouped[from], e.To.String())
	}
	for _, dests := range grouped {
		slices.Sort(dests)
	}
	return grouped
}

// origins returns the keys of a grouped move map in order.
func origins(grouped map[string][]string) []string {
	keys := maps.Keys(grouped)
	slices.Sort(keys)
	return keys
}
