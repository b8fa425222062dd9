// Package forward evaluates computation graphs in forward mode.
//
// A single left-to-right pass over the node list produces every node's
// primal value and its tangent row: the derivative of that node with
// respect to every declared input simultaneously. Inputs seed one-hot
// tangent rows, so one evaluation yields a full Jacobian row per output
// without re-running the graph once per input.
package forward

import (
	"errors"
	"fmt"

	"github.com/tangent-ml/tangent/internal/graph"
)

// ErrInputLength reports a Compute call whose input vector length does not
// match the graph's declared input count.
var ErrInputLength = errors.New("input vector length does not match declared inputs")

// Result is the (value, gradient) pair reported for one output node.
// Gradient holds one derivative per declared input, in declaration order.
type Result struct {
	Value    float64
	Gradient []float64
}

// Evaluator computes values and gradients for a single graph.
//
// The evaluator owns all per-evaluation scratch, so one graph may be shared
// read-only by any number of concurrent evaluators. A single Evaluator must
// not be used from more than one goroutine at a time.
type Evaluator struct {
	graph *graph.Graph

	// Scratch reused across Compute calls. values[i] is node i's primal;
	// tangents is numNodes rows of numInputs columns, row-major, so the
	// tangent of node i w.r.t. input j lives at i*numInputs+j. Buffers grow
	// monotonically and every slot read during a pass has been written
	// earlier in the same call.
	values   []float64
	tangents []float64
	args     []float64
	partials []float64
}

// New creates an evaluator for g. The graph must not be modified while any
// evaluator for it exists.
func New(g *graph.Graph) *Evaluator {
	return &Evaluator{graph: g}
}

// Compute evaluates the graph for one input vector and returns a Result per
// output node, in output declaration order. Gradient slices are freshly
// allocated, so they stay valid across later Compute calls.
//
// Compute is a pure function of (graph, inputs): calling it twice with the
// same inputs yields bit-identical results. NaN and Inf produced by
// legitimate math propagate through values and gradients as ordinary
// IEEE-754 values; the only error condition is a wrong input vector length,
// which is rejected before any buffer work.
func (e *Evaluator) Compute(inputs []float64) ([]Result, error) {
	g := e.graph
	numInputs := g.NumInputs()
	if len(inputs) != numInputs {
		return nil, fmt.Errorf("forward: %w: got %d, want %d", ErrInputLength, len(inputs), numInputs)
	}

	numNodes := g.NumNodes()
	e.values = grow(e.values, numNodes)
	e.tangents = grow(e.tangents, numNodes*numInputs)

	// Pass 1: seed each input's value and its one-hot tangent row.
	for pos, id := range g.InputIDs() {
		e.values[id] = inputs[pos]
		row := e.tangents[int(id)*numInputs : (int(id)+1)*numInputs]
		for j := range row {
			row[j] = 0
		}
		row[pos] = 1
	}

	// Pass 2: visit nodes in ascending id order. The builder rejects
	// forward references, so every operand slot is already filled when a
	// node is reached.
	for id := 0; id < numNodes; id++ {
		n := g.Node(graph.NodeID(id))
		if n.Kind != graph.NodeOperation {
			continue
		}

		e.args = e.args[:0]
		for _, src := range n.Operands {
			e.args = append(e.args, e.values[src])
		}
		e.values[id] = n.Op.Eval(e.args)

		// tangent[node] = Σᵢ ∂op/∂operandᵢ · tangent[operandᵢ]
		e.partials = e.partials[:0]
		for i := range n.Operands {
			e.partials = append(e.partials, n.Op.Partial(e.args, i))
		}
		row := e.tangents[id*numInputs : (id+1)*numInputs]
		for j := range row {
			acc := 0.0
			for i, src := range n.Operands {
				acc += e.partials[i] * e.tangents[int(src)*numInputs+j]
			}
			row[j] = acc
		}
	}

	// Pass 3: output markers mirror their source's value and tangent row,
	// so outputs are addressable nodes with the same shape as any other.
	outputs := g.OutputIDs()
	results := make([]Result, 0, len(outputs))
	for _, id := range outputs {
		src := g.Node(id).Source
		e.values[id] = e.values[src]
		row := e.tangents[int(id)*numInputs : (int(id)+1)*numInputs]
		copy(row, e.tangents[int(src)*numInputs:(int(src)+1)*numInputs])

		grad := make([]float64, numInputs)
		copy(grad, row)
		results = append(results, Result{Value: e.values[id], Gradient: grad})
	}
	return results, nil
}

// grow resizes buf to n elements, reusing capacity when possible. Contents
// are unspecified; callers fully overwrite before reading.
func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}
