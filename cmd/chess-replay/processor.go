// processor.go - Move-log loading, replay and report output
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// SavedGame is the on-disk form of a game: the moves played so far and the
// player whose turn it is.
type SavedGame struct {
	Active chess.Colour   `json:"active"`
	Moves  engine.MoveLog `json:"moves"`
}

// squarePair is one move typed on the command line.
type squarePair struct {
	From, To chess.Square
}

// ProcessingContext holds the settings shared by every replayed file.
type ProcessingContext struct {
	cfg   *config.Config
	undo  int
	moves []squarePair
}

// parseMoves splits a list like "e2e4,e7e5" or "e2e4 e7e5" into square pairs.
func parseMoves(s string) ([]squarePair, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	moves := make([]squarePair, 0, len(fields))
	for i, tok := range fields {
		if len(tok) != 4 {
			return nil, &errors.ParseError{Err: errors.ErrInvalidNotation, Token: i + 1, Expected: "move like e2e4", Got: tok}
		}
		from, err := chess.ParseSquare(tok[:2])
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		to, err := chess.ParseSquare(tok[2:])
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		moves = append(moves, squarePair{From: from, To: to})
	}
	return moves, nil
}

// readSavedGame decodes a saved game.
func readSavedGame(r io.Reader, name string) (*SavedGame, error) {
	var saved SavedGame
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&saved); err != nil {
		return nil, &errors.ParseError{Err: fmt.Errorf("%w: %v", errors.ErrInvalidLog, err), File: name}
	}
	return &saved, nil
}

// writeSavedGame encodes g's move log and side to move.
func writeSavedGame(w io.Writer, g *engine.GameState) error {
	saved := SavedGame{Active: g.ToMove(), Moves: g.SerializeMoves()}
	if saved.Moves == nil {
		saved.Moves = engine.MoveLog{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&saved)
}

// loadGame replays the saved game at path, or starts a new game when path
// is empty.
func loadGame(path string, cfg *config.Config) (*engine.GameState, error) {
	if path == "" {
		return engine.NewGameWithConfig(cfg), nil
	}

	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only file

	saved, err := readSavedGame(file, path)
	if err != nil {
		return nil, err
	}

	g, err := engine.LoadFromSetup(engine.StandardSetup(), saved.Moves, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "replaying %s", path)
	}

	if g.ToMove() != saved.Active {
		cfg.Logf(1, "%s: saved active player %s, but %s is to move after %d plies", path, saved.Active, g.ToMove(), g.Ply())
	}
	return g, nil
}

// processItem loads one game, takes back ctx.undo moves and plays ctx.moves.
func processItem(ctx *ProcessingContext, item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Path: item.Path, Index: item.Index}

	g, err := loadGame(item.Path, ctx.cfg)
	if err != nil {
		res.Error = err
		return res
	}

	for i := 0; i < ctx.undo && g.Ply() > 0; i++ {
		if g, err = g.Undo(); err != nil {
			res.Error = err
			return res
		}
	}

	for _, mv := range ctx.moves {
		if err := g.Move(mv.From, mv.To); err != nil {
			res.Error = errors.Wrapf(err, "playing %s%s", mv.From, mv.To)
			return res
		}
	}

	res.Game = g
	return res
}

// displayName labels a result in reports.
func displayName(path string) string {
	if path == "" {
		return "new game"
	}
	return path
}

// replayAll replays every path (a single new game when paths is empty),
// writes one report per game to cfg.OutputFile and returns the results in
// input order.
func replayAll(ctx *ProcessingContext, paths []string, stopOnError bool) ([]worker.ProcessResult, error) {
	if len(paths) == 0 {
		paths = []string{""}
	}

	items := make([]worker.WorkItem, len(paths))
	for i, p := range paths {
		items[i] = worker.WorkItem{Path: p, Index: i}
	}

	fn := func(item worker.WorkItem) worker.ProcessResult {
		return processItem(ctx, item)
	}
	results := worker.Run(items, fn, stopOnError, worker.WithWorkers(ctx.cfg.Workers))

	rw := output.NewReportWriter(ctx.cfg.OutputFile, ctx.cfg.Output.JSONFormat)
	for i, res := range results {
		name := displayName(paths[i])
		var report *output.Report
		switch {
		case res.Error != nil:
			ctx.cfg.Logf(1, "%s: %v", name, res.Error)
			report = output.ErrorReport(name, res.Error)
		case res.Game == nil:
			// Skipped after an earlier failure.
			continue
		default:
			report = output.BuildReport(name, res.Game, ctx.cfg.Output)
		}
		if err := rw.WriteReport(report); err != nil {
			return results, err
		}
	}
	return results, rw.Close()
}

// saveResult writes the single replayed game to path.
func saveResult(path string, results []worker.ProcessResult) error {
	if len(results) != 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "-save needs exactly one game, got %d", len(results))
	}
	if results[0].Game == nil {
		if results[0].Error != nil {
			return errors.Wrap(results[0].Error, "nothing to save")
		}
		return errors.Wrap(errors.ErrInvalidLog, "nothing to save")
	}

	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return err
	}
	if err := writeSavedGame(file, results[0].Game); err != nil {
		file.Close() //nolint:errcheck,gosec // already failing
		return err
	}
	return file.Close()
}

// countFailures returns how many results carry an error.
func countFailures(results []worker.ProcessResult) int {
	n := 0
	for _, res := range results {
		if res.Error != nil {
			n++
		}
	}
	return n
}
