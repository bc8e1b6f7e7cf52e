// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs index-space loops across a bounded number of
// goroutines. Kernels in contrib take an Executor so that callers running
// many small operators can share one pool instead of spawning goroutines
// per call.
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//	pool.ParallelFor(numPlanes, func(start, end int) {
//	    for p := start; p < end; p++ {
//	        processPlane(p)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Executor distributes loop iterations over workers.
// Implementations must return only after every iteration has completed.
type Executor interface {
	// NumWorkers returns the maximum number of concurrent workers.
	NumWorkers() int

	// ParallelFor splits [0, n) into contiguous ranges, at most one per
	// worker, and calls fn once per range.
	ParallelFor(n int, fn func(start, end int))

	// ParallelForAtomic calls fn(i) for every i in [0, n). Workers claim
	// indices one at a time, which balances uneven per-index cost.
	ParallelForAtomic(n int, fn func(i int))
}

// Pool is an Executor backed by errgroup with a concurrency limit.
// A Pool is safe for concurrent use.
type Pool struct {
	numWorkers int
	closed     atomic.Bool
}

var _ Executor = (*Pool)(nil)

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, runtime.GOMAXPROCS(0) is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{numWorkers: numWorkers}
}

// NumWorkers returns the worker limit, or 1 once the pool is closed.
func (p *Pool) NumWorkers() int {
	if p.closed.Load() {
		return 1
	}
	return p.numWorkers
}

// Close releases the pool. Loops issued after Close run on the calling
// goroutine.
func (p *Pool) Close() {
	p.closed.Store(true)
}

// ParallelFor implements Executor.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.NumWorkers(), n)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelForAtomic implements Executor.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.NumWorkers(), n)
	if workers <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				fn(i)
			}
		})
	}
	_ = g.Wait()
}
