// Copyright 2026 go-watermark Authors
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

// Package workerpool provides a persistent worker pool for running
// independent watermarking jobs in parallel.
//
// Creating goroutines per job is cheap but not free; a Pool spawns its
// workers once and reuses them across many calls:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	err := pool.Run(len(images), func(i int) error {
//	    return process(images[i])
//	})
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// WorkersEnv names the environment variable read by Default to size the
// shared pool. Unset, empty or non-positive values select GOMAXPROCS.
const WorkersEnv = "WATERMARK_WORKERS"

// Pool owns a fixed set of worker goroutines that pick up jobs from a shared
// queue until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one queued job; barrier is released when fn returns.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts numWorkers workers, or GOMAXPROCS workers if numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns a process-wide pool sized by WorkersEnv. It is created on
// first use and never closed.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = New(workersFromEnv())
	})
	return defaultPool
}

func workersFromEnv() int {
	val := os.Getenv(WorkersEnv)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers after queued jobs finish. Later calls run on the
// caller's goroutine. Close is idempotent and safe on a nil Pool.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// sequential reports whether work must run on the calling goroutine.
func (p *Pool) sequential(n int) bool {
	return p == nil || p.closed.Load() || min(p.numWorkers, n) <= 1
}

// Run calls fn for every index in [0, n), handing indices to workers one at
// a time so that uneven jobs balance out. Once a call fails no further
// indices are started; Run waits for the ones in flight and returns the
// error of the lowest failing index.
func (p *Pool) Run(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if p.sequential(n) {
		for i := range n {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		nextIdx  atomic.Int64
		failed   atomic.Bool
		mu       sync.Mutex
		firstIdx = n
		firstErr error
	)

	workers := min(p.numWorkers, n)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for !failed.Load() {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					if err := fn(idx); err != nil {
						mu.Lock()
						if idx < firstIdx {
							firstIdx, firstErr = idx, err
						}
						mu.Unlock()
						failed.Store(true)
					}
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	return firstErr
}
