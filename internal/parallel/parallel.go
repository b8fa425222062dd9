// Package parallel provides the chunked worker helper used for batch graph
// evaluation.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a range of work items is split across goroutines.
type Config struct {
	Enabled      bool // Whether work may be spread over worker goroutines.
	NumWorkers   int  // Upper bound on concurrent workers.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count. A work item
// here is a whole-graph evaluation rather than a single array element, so
// chunks are kept small.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4,
	}
}

// For executes f(i) for i in [0, n), splitting the range into contiguous
// chunks. Falls back to sequential execution if parallelism is disabled or
// n is too small to be worth the goroutine overhead.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
