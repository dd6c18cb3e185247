// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"
	"strings"

	"github.com/lgbarn/negamax-chess-go/internal/config"
	"github.com/lgbarn/negamax-chess-go/internal/output"
	"github.com/lgbarn/negamax-chess-go/internal/worker"
)

var (
	// Position
	fenFlag   = flag.String("fen", "", "Start position in FEN (default: standard start)")
	playMoves = flag.String("play", "", "Comma-separated coordinate moves to play first (e.g. e2e4,e7e5)")

	// Search
	depth      = flag.Int("depth", 3, "Search depth in plies")
	plies      = flag.Int("plies", 1, "Number of plies to self-play (0 = until the game ends)")
	seed       = flag.Int64("seed", 0, "Seed for root move shuffling (0 = seed from the clock)")
	shuffle    = flag.Bool("shuffle", true, "Shuffle root moves so equal moves vary between runs")
	ttCapacity = flag.Int("tt", 1<<20, "Transposition table capacity in entries (0 = unlimited, -1 = disabled)")
	randomMove = flag.Bool("random", false, "Pick moves at random instead of searching")

	// Batch analysis
	batchFile = flag.String("batch", "", "File of FEN positions to analyse, one per line (- for stdin)")
	workers   = flag.Int("workers", 1, "Number of parallel workers for -batch")
	failFast  = flag.Bool("failfast", false, "Stop -batch at the first position that fails")

	// Queries
	listMoves = flag.Bool("moves", false, "Print the legal moves of the position and exit")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this log file (default: stderr)")
	jsonOutput = flag.Bool("J", false, "Write batch results and played games as JSON")
	jsonLines  = flag.Bool("jsonl", false, "Write batch results as one JSON object per line")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 silent, 1 search summaries, 2 per-move detail")
	quiet      = flag.Bool("s", false, "Silent mode: same as -v 0")

	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags copies flag values onto cfg.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applySearchFlags configures the search engine.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Shuffle = *shuffle
	cfg.Search.Seed = *seed
	if *ttCapacity >= 0 {
		cfg.Search.TTCapacity = *ttCapacity
	}
}

// tableEnabled reports whether -tt asks for a transposition table.
func tableEnabled() bool {
	return *ttCapacity >= 0
}

// parseMoveList splits the -play value into coordinate moves.
func parseMoveList(s string) []string {
	var moves []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			moves = append(moves, part)
		}
	}
	return moves
}

// newResultWriter returns the batch result writer selected by -jsonl or -J.
func newResultWriter(w io.Writer) output.ResultWriter {
	if *jsonLines {
		return output.NewJSONWriterSingle(w)
	}
	if *jsonOutput {
		return output.NewJSONWriter(w)
	}
	return output.NewTextWriter(w)
}

// batchOptions returns the worker pool options for -batch.
func batchOptions(numWorkers int) []worker.PoolOption {
	opts := []worker.PoolOption{worker.WithWorkers(numWorkers)}
	if *failFast {
		opts = append(opts, worker.WithStopOnError())
	}
	return opts
}
