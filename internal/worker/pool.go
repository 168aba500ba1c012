// Package worker provides a worker pool for analysing many positions in
// parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/search"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	Index int // Input line, for restoring order
	FEN   string
}

// ProcessResult is the analysis of one work item.
type ProcessResult struct {
	Index    int
	FEN      string
	Position *chess.Position // nil when the FEN did not parse
	Result   search.Result
	Err      error
}

// ProcessFunc analyses a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ProcessorFactory builds the ProcessFunc for one worker. Each worker calls
// it once, so state that is not safe for concurrent use (a Searcher and its
// random source) stays private to that worker.
type ProcessorFactory func(worker int) ProcessFunc

// Pool manages a pool of workers for parallel analysis.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan ProcessResult
	factory    ProcessorFactory
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
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

// NewPool creates a pool with the given number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, factory ProcessorFactory) *Pool {
	return NewPoolWithOptions(factory, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(factory ProcessorFactory, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		factory:    factory,
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
		go p.worker(p.factory(i))
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(process ProcessFunc) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- process(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel are drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
