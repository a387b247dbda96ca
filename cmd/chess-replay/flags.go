// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Output reports in JSON format")
	unicode     = flag.Bool("unicode", false, "Draw pieces with figurine glyphs")
	showLegal   = flag.Bool("legal", false, "List the legal moves of the side to move")
	noBoard     = flag.Bool("noboard", false, "Don't draw the board")
	saveFile    = flag.String("save", "", "Save the resulting move log to this file (single game only)")
	stopOnError = flag.Bool("stoponerror", false, "Stop replaying remaining files after the first failure")

	// Play options
	extraMoves = flag.String("moves", "", "Moves to play after loading, e.g. 'e2e4,e7e5'")
	undoCount  = flag.Int("undo", 0, "Take back the last N moves after loading")

	// Engine options
	strictApply = flag.Bool("strict", false, "Re-check own-king safety when applying moves")
	replayOnly  = flag.Bool("replayonly", false, "Build move indexes lazily")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("verbose", 1, "Diagnostic level: 0 silent, 1 summary, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -verbose 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of files replayed concurrently (0 = one per CPU core)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyEngineFlags(cfg)

	cfg.Workers = *workers
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Unicode = *unicode
	cfg.Output.ShowLegalMoves = *showLegal
	cfg.Output.ShowBoard = !*noBoard
}

// applyEngineFlags configures the rules engine.
func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.StrictApply = *strictApply
	cfg.Engine.ReplayOnly = *replayOnly
}
