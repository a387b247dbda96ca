// Package worker replays games on a pool of goroutines. Each work item gets
// its own game state, so games never share mutable data.
package worker

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WorkItem names one game to replay.
type WorkItem struct {
	Path  string // Move-log file, or "" for a new game
	Index int    // Position in the submission order
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Path  string
	Index int
	Game  *engine.GameState // nil when Error is set
	Error error
}

// ProcessFunc replays a single item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items with a fixed number of
// goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one select
// one worker per CPU.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		p.numWorkers = n
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
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

// Start starts the worker goroutines.
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
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting work, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes every item and returns the results in submission order.
// When stopOnError is set, the first failure stops items that have not
// started yet; their slots hold a zero result.
func Run(items []WorkItem, processFunc ProcessFunc, stopOnError bool, opts ...Option) []ProcessResult {
	p := NewPool(processFunc, opts...)
	p.Start()

	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, len(items))
	for res := range p.Results() {
		if res.Error != nil && stopOnError {
			p.Stop()
		}
		if res.Index >= 0 && res.Index < len(results) {
			results[res.Index] = res
		}
	}
	return results
}
