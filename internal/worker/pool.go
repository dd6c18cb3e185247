// Package worker runs position analyses on a pool of goroutines. Each work
// item owns its own game state; only the transposition table may be shared.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/negamax-chess-go/internal/chess"
	"github.com/lgbarn/negamax-chess-go/internal/engine"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	FEN   string
	Index int // Position in the input, for restoring order
}

// ProcessResult is the analysis of one position.
type ProcessResult struct {
	Index  int
	FEN    string
	Status engine.GameStatus
	Move   chess.Move
	Found  bool // false when the position has no legal moves
	Score  int  // from the point of view of the side to move
	Nodes  int
	Error  error
}

// ProcessFunc analyses a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
	stopOnError bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnError stops the pool after the first result carrying an error.
// Items still queued at that point are skipped and produce no result.
func WithStopOnError() PoolOption {
	return func(p *Pool) {
		p.stopOnError = true
	}
}

// NewPool creates a pool with 1 worker and a buffer of 10 unless
// overridden by options.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without analysing
		}
		res := p.processFunc(item)
		if res.Error != nil && p.stopOnError {
			p.Stop()
		}
		p.resultChan <- res
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true once Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close stops accepting work, waits for the workers and then closes the
// result channel. Results must be consumed concurrently or Close may block.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of finished analyses.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunAll analyses every FEN and returns the results in input order. With
// WithStopOnError, positions skipped after a failure are missing from the
// results.
func RunAll(fens []string, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for i, fen := range fens {
			pool.Submit(WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(fens))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
