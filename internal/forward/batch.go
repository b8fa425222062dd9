package forward

import (
	"fmt"
	"sync"

	"github.com/tangent-ml/tangent/internal/graph"
	"github.com/tangent-ml/tangent/internal/parallel"
)

// Batch evaluates one input vector per row of batch against a shared graph
// and returns the per-row results in the same order.
//
// The graph is read-only during evaluation, so rows run concurrently with
// an evaluator (and therefore private scratch buffers) per worker. Every
// row length is validated up front; a mismatch fails before any evaluation
// starts.
func Batch(g *graph.Graph, batch [][]float64, cfg parallel.Config) ([][]Result, error) {
	numInputs := g.NumInputs()
	for i, row := range batch {
		if len(row) != numInputs {
			return nil, fmt.Errorf("forward: batch row %d: %w: got %d, want %d",
				i, ErrInputLength, len(row), numInputs)
		}
	}

	pool := sync.Pool{New: func() any { return New(g) }}
	results := make([][]Result, len(batch))
	parallel.For(len(batch), func(i int) {
		ev := pool.Get().(*Evaluator)
		// Row lengths were validated above, so Compute cannot fail here.
		results[i], _ = ev.Compute(batch[i])
		pool.Put(ev)
	}, cfg)
	return results, nil
}
