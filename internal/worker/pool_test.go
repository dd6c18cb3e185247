package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/negamax-chess-go/internal/engine"
	"github.com/lgbarn/negamax-chess-go/internal/errors"
)

// noopProcessFunc echoes the item back.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{FEN: item.FEN, Index: item.Index}
	}
}

// countingProcessFunc counts the items it sees.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{FEN: item.FEN, Index: item.Index, Found: true}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{FEN: engine.InitialFEN, Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

func TestPoolStopOnError(t *testing.T) {
	fail := func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index}
		if item.Index == 1 {
			res.Error = errors.ErrInvalidFEN
		}
		return res
	}

	fens := make([]string, 20)
	results := RunAll(fens, fail, WithStopOnError())

	if len(results) != 2 {
		t.Fatalf("got %d results; want 2", len(results))
	}
	if results[1].Error == nil {
		t.Error("second result should carry the error")
	}
}

func TestPoolStopFlag(t *testing.T) {
	pool := NewPool(noopProcessFunc())
	if pool.IsStopped() {
		t.Error("new pool should not be stopped")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Start()
	pool.Submit(WorkItem{Index: 0})
	go pool.Close()
	if got := collectResults(pool); got != 0 {
		t.Errorf("stopped pool produced %d results", got)
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"zero workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestRunAllKeepsInputOrder(t *testing.T) {
	delayed := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index, FEN: item.FEN}
	}
	fens := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	results := RunAll(fens, delayed, WithWorkers(4), WithBufferSize(2))
	if len(results) != len(fens) {
		t.Fatalf("results = %d; want %d", len(results), len(fens))
	}
	for i, r := range results {
		if r.Index != i || r.FEN != fens[i] {
			t.Errorf("results[%d] = {%d %q}; want {%d %q}", i, r.Index, r.FEN, i, fens[i])
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	const numItems = 100
	fens := make([]string, numItems)
	for i := range fens {
		fens[i] = engine.InitialFEN
	}

	RunAll(fens, countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}
