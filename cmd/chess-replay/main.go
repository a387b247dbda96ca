// chess-replay loads saved chess games, replays them under the full rules
// and reports the position, game status and legal moves.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-replay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	moves, err := parseMoves(*extraMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -moves: %v\n", err)
		os.Exit(2)
	}

	ctx := &ProcessingContext{cfg: cfg, undo: *undoCount, moves: moves}
	results, err := replayAll(ctx, flag.Args(), *stopOnError)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	failures := countFailures(results)
	if *saveFile != "" && failures == 0 {
		if err := saveResult(*saveFile, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", *saveFile, err)
			os.Exit(1)
		}
	}

	cfg.Logf(1, "%d game(s) replayed, %d failed.", len(results)-failures, failures)
	if failures > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-replay [options] [saved-games...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays saved chess games and reports the resulting positions.\n")
	fmt.Fprintf(os.Stderr, "With no files, a new game is started.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSaved game format:\n")
	fmt.Fprintf(os.Stderr, "  {\"active\": \"white\", \"moves\": [{\"from\": \"e2\", \"to\": \"e4\", \"type\": \"free\"}]}\n")
	fmt.Fprintf(os.Stderr, "\nMove types: free, capture, en_passant, castle\n")
}
