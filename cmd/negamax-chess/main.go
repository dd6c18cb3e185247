// negamax-chess plays and analyses chess positions with a NegaMax
// alpha-beta search.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/negamax-chess-go/internal/config"
	"github.com/lgbarn/negamax-chess-go/internal/engine"
	"github.com/lgbarn/negamax-chess-go/internal/errors"
	"github.com/lgbarn/negamax-chess-go/internal/hashing"
	"github.com/lgbarn/negamax-chess-go/internal/output"
	"github.com/lgbarn/negamax-chess-go/internal/search"
	"github.com/lgbarn/negamax-chess-go/internal/worker"
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
		fmt.Printf("negamax-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches on the selected mode.
func run(cfg *config.Config) error {
	if *batchFile != "" {
		return runBatchFile(cfg, *batchFile)
	}

	gs, err := loadPosition(*fenFlag, parseMoveList(*playMoves))
	if err != nil {
		return err
	}

	if *listMoves {
		printMoves(cfg.OutputFile, gs)
		return nil
	}

	var chooser moveChooser
	if *randomMove {
		chooser = randomChooser(newRand(cfg.Search.Seed))
	} else {
		chooser = searchChooser(search.New(cfg, newCache(cfg.Search.TTCapacity, false)))
	}
	return selfPlay(cfg, gs, *plies, chooser)
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

// loadPosition builds the starting game state and plays any opening moves.
func loadPosition(fen string, moves []string) (*engine.GameState, error) {
	gs := engine.NewGameState()
	if fen != "" {
		var err error
		if gs, err = engine.NewGameStateFromFEN(fen); err != nil {
			return nil, err
		}
	}
	if err := gs.PlayAll(moves...); err != nil {
		return nil, err
	}
	return gs, nil
}

// newCache returns the transposition table for the given capacity, or nil
// when tables are disabled. shared selects the locking variant.
func newCache(capacity int, shared bool) hashing.Cache {
	if !tableEnabled() {
		return nil
	}
	if shared {
		return hashing.NewLockedTable(capacity)
	}
	return hashing.NewTable(capacity)
}

// newRand returns a source seeded with seed, or from the clock if zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// runBatchFile analyses every FEN in the named file ("-" for stdin).
func runBatchFile(cfg *config.Config, name string) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "opening batch file %s", name)
		}
		defer file.Close()
		r = file
	}
	return runBatch(cfg, r, *workers, newCache(cfg.Search.TTCapacity, true))
}

// readFENs returns the non-empty, non-comment lines of r.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// runBatch analyses positions on a worker pool and writes one result per
// position, in input order.
func runBatch(cfg *config.Config, r io.Reader, numWorkers int, cache hashing.Cache) error {
	fens, err := readFENs(r)
	if err != nil {
		return errors.Wrap(err, "reading positions")
	}

	results := worker.RunAll(fens, worker.NewAnalyseFunc(cfg, cache), batchOptions(numWorkers)...)

	failed := 0
	var firstErr error
	for _, res := range results {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(res.Error, "line %d", res.Index+1)
			}
			failed++
		}
	}
	if err := output.WriteAll(newResultWriter(cfg.OutputFile), results); err != nil {
		return errors.Wrap(err, "writing results")
	}
	cfg.Logf(1, "Analysed %d positions, %d failed\n", len(results), failed)

	if *failFast && firstErr != nil {
		return firstErr
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: negamax-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays or analyses chess positions with a NegaMax alpha-beta search.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBatch output columns (-batch):\n")
	fmt.Fprintf(os.Stderr, "  line  status  move  score  nodes\n")
	fmt.Fprintf(os.Stderr, "  Scores are from the side to move's point of view.\n")
	fmt.Fprintf(os.Stderr, "  With -J, results are written as one JSON document instead;\n")
	fmt.Fprintf(os.Stderr, "  with -jsonl, as one JSON object per line.\n")
}
