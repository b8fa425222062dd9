// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package forward provides forward-mode evaluation of computation graphs.
//
// One Compute call produces, for every declared output, both the output's
// value and its full gradient with respect to every declared input.
//
// Example:
//
//	import (
//	    "github.com/tangent-ml/tangent/forward"
//	    "github.com/tangent-ml/tangent/graph"
//	)
//
//	func main() {
//	    g := graph.New()
//	    x := g.Input("x")
//	    sq, _ := g.Operation(graph.Pow(2), x)
//	    g.Output(sq)
//
//	    results, _ := forward.New(g).Compute([]float64{3})
//	    // results[0].Value == 9, results[0].Gradient == []float64{6}
//	}
package forward

import (
	"github.com/tangent-ml/tangent/internal/forward"
	"github.com/tangent-ml/tangent/internal/graph"
	"github.com/tangent-ml/tangent/internal/parallel"
)

// Evaluator computes values and gradients for a single graph. Independent
// evaluators may share one graph concurrently; a single evaluator is not
// safe for concurrent use.
type Evaluator = forward.Evaluator

// Result is the (value, gradient) pair reported for one output node.
type Result = forward.Result

// ErrInputLength reports a Compute call whose input vector length does not
// match the graph's declared input count.
var ErrInputLength = forward.ErrInputLength

// New creates an evaluator for g.
func New(g *graph.Graph) *Evaluator { return forward.New(g) }

// BatchConfig controls the worker pool used by Batch.
type BatchConfig = parallel.Config

// DefaultBatchConfig returns worker-pool defaults based on CPU count.
func DefaultBatchConfig() BatchConfig { return parallel.DefaultConfig() }

// Batch evaluates one input vector per row of batch against a shared graph,
// spreading rows over a worker pool.
func Batch(g *graph.Graph, batch [][]float64, cfg BatchConfig) ([][]Result, error) {
	return forward.Batch(g, batch, cfg)
}
