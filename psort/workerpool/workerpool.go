// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for fork-join
// parallel computation. Unlike per-call goroutine spawning, a Pool is created
// once and reused across many operations, eliminating allocation and spawn
// overhead.
//
// Work is submitted through a Group, a fork-join scope: tasks spawned into a
// group may themselves spawn further tasks into the same group, and
// Group.Wait blocks until every task, including transitively spawned ones,
// has finished. This is the shape divide-and-conquer algorithms need; the
// flat chunked loop ParallelFor is built on the same mechanism.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	g := pool.NewGroup()
//	g.Spawn(func() { ... })   // may itself call g.Spawn
//	g.Wait()                  // join barrier
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is a single unit of work bound to its fork-join group.
type task struct {
	fn    func()
	group *Group
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work. Spawns
		// beyond that run inline on the spawning goroutine, which keeps
		// the number of live tasks bounded without ever dropping one.
		workC: make(chan task, numWorkers*2),
	}

	// Spawn persistent workers
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for t := range p.workC {
		t.group.run(t.fn)
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Group is a fork-join scope over the pool. Tasks spawned into a group may
// spawn further tasks into the same group; Wait returns only once the whole
// tree of tasks has completed.
//
// A Group must not be reused after Wait returns.
type Group struct {
	pool      *Pool
	wg        sync.WaitGroup
	panicOnce sync.Once
	failure   any
}

// NewGroup creates a fork-join scope backed by this pool.
func (p *Pool) NewGroup() *Group {
	return &Group{pool: p}
}

// Spawn submits fn to the pool as an independently schedulable task.
// If the pool's queue is full, or the pool has been closed, fn executes
// immediately on the calling goroutine; either way it is counted toward
// the group's join barrier and is never dropped.
func (g *Group) Spawn(fn func()) {
	g.wg.Add(1)
	if g.pool.closed.Load() {
		g.run(fn)
		return
	}
	select {
	case g.pool.workC <- task{fn: fn, group: g}:
	default:
		g.run(fn)
	}
}

// run executes one task, recovering any panic so the barrier still drains.
// The first captured panic is rethrown by Wait.
func (g *Group) run(fn func()) {
	defer g.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			g.panicOnce.Do(func() { g.failure = r })
		}
	}()
	fn()
}

// Wait blocks until every task spawned into the group, including tasks
// spawned by other tasks, has finished. If any task panicked, Wait rethrows
// the first such panic in the calling goroutine.
//
// A task's own Spawn calls raise the barrier count before the task finishes,
// so Wait cannot release while descendants are still pending.
func (g *Group) Wait() {
	g.wg.Wait()
	if g.failure != nil {
		panic(g.failure)
	}
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Determine number of workers to use (don't use more workers than items)
	workers := min(p.numWorkers, n)

	// For very small n, just run sequentially
	if workers == 1 {
		fn(0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	g := p.NewGroup()
	for start := 0; start < n; start += chunkSize {
		start := start
		end := min(start+chunkSize, n)
		g.Spawn(func() {
			fn(start, end)
		})
	}
	g.Wait()
}
