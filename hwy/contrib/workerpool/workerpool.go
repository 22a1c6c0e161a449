// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for sweeping large
// index ranges in batches. A Pool is created once and shared by every sweep,
// so checking millions of register groups does not pay a goroutine spawn per
// batch.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Sweep(ctx, 1<<16, 1024, func(start, end int) error {
//	    return checkPatterns(start, end)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every Sweep until Close.
type Pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Sweeps already running finish first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Sweep calls fn over [0, n) in batches of batchSize indices. Workers grab
// batches with an atomic counter, so uneven batches still balance.
//
// The first error returned by fn, or ctx's error once it is done, stops the
// remaining batches from being started and is returned. Batches already in
// flight run to completion. A closed pool sweeps sequentially.
func (p *Pool) Sweep(ctx context.Context, n, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	var (
		nextBatch atomic.Int64
		firstErr  error
		errOnce   sync.Once
		failed    atomic.Bool
	)
	setErr := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			failed.Store(true)
		})
	}
	run := func() {
		for !failed.Load() {
			if err := ctx.Err(); err != nil {
				setErr(err)
				return
			}
			start := int(nextBatch.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			if err := fn(start, min(start+batchSize, n)); err != nil {
				setErr(err)
				return
			}
		}
	}

	if workers == 1 || p.closed.Load() {
		run()
		return firstErr
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- func() {
			defer wg.Done()
			run()
		}
	}
	wg.Wait()
	return firstErr
}
