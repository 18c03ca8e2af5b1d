// Package parallel provides a worker pool for data-parallel per-vertex
// passes. Strategy initializers split a vertex index range into chunks and
// run them concurrently; within one pass every chunk writes only its own
// indices, so no locking is needed.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minParallel is the smallest range worth fanning out. Below this the
// goroutine handoff costs more than the work.
const minParallel = 2048

// span is one contiguous chunk of a range pass.
type span struct {
	lo, hi int
	fn     func(lo, hi int)
	wg     *sync.WaitGroup
}

// Pool is a fixed set of worker goroutines executing range chunks.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// spans carries queued chunks to the workers.
	spans chan span

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// New creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		spans:   make(chan span, workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			// Drain remaining chunks before exiting so a pass racing
			// Close is never left waiting on an abandoned span.
			p.drain()
			return
		case s := <-p.spans:
			s.fn(s.lo, s.hi)
			s.wg.Done()
		}
	}
}

// drain executes every span still queued.
func (p *Pool) drain() {
	for {
		select {
		case s := <-p.spans:
			s.fn(s.lo, s.hi)
			s.wg.Done()
		default:
			return
		}
	}
}

// ForRange runs fn over [0, n) split into chunks, one chunk per call, and
// waits for every chunk to finish. Small ranges and closed pools run inline
// on the caller.
func (p *Pool) ForRange(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if p == nil || n < minParallel || !p.running.Load() {
		fn(0, n)
		return
	}

	// Oversplit a little so an uneven chunk cannot straggle the pass.
	chunks := p.workers * 4
	size := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		wg.Add(1)
		select {
		case p.spans <- span{lo: lo, hi: hi, fn: fn, wg: &wg}:
		case <-p.done:
			// Pool closing; run the chunk inline.
			fn(lo, hi)
			wg.Done()
		}
	}

	// Help drain while waiting. If the pool shuts down mid-pass, any
	// span the exiting workers did not pick up is executed here instead
	// of being waited on forever.
	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	for {
		select {
		case <-waitDone:
			return
		case s := <-p.spans:
			s.fn(s.lo, s.hi)
			s.wg.Done()
		}
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers. Chunks already queued still run: exiting workers
// drain the queue, and a ForRange racing with Close executes leftovers on
// its own goroutine. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// defaultPool is the shared pool used when callers do not bring their own.
var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// Default returns the shared package pool, created on first use with
// GOMAXPROCS workers. It is never closed.
func Default() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = New(0)
	})
	return defaultPool
}
