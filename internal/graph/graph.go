// Package graph implements the computation graph builder for forward-mode
// automatic differentiation.
//
// A graph is an append-only list of nodes. Each builder call appends one
// node and returns its id, and an operation may only reference ids that
// already exist, so construction order is guaranteed to be a valid
// topological order. The lifecycle is build → evaluate (repeatedly) →
// discard: no node is ever removed or mutated, and a finished graph is
// read-only and safe to share across concurrent evaluators.
package graph

import "fmt"

// Graph is an append-only computation graph. The zero value is not ready
// for use; call New.
type Graph struct {
	nodes     []Node
	inputIDs  []NodeID
	outputIDs []NodeID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make([]Node, 0, 16),
	}
}

// Input appends an input leaf and returns its id. The name is advisory
// metadata; duplicates are permitted. Evaluation binds values to inputs by
// declaration order, and the same order defines the gradient columns.
func (g *Graph) Input(name string) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		Kind:     NodeInput,
		Name:     name,
		InputPos: len(g.inputIDs),
	})
	g.inputIDs = append(g.inputIDs, id)
	return id
}

// Operation appends an operation node applying op to the given operands and
// returns its id.
//
// The call fails if the operand count does not match the operator's arity,
// or if any operand id does not refer to an already created input or
// operation node. Rejecting forward references here is what guarantees that
// ascending id order is a topological order, so evaluators never need to
// check it again; rejecting output markers keeps every operand a node whose
// value is produced during the ascending walk.
func (g *Graph) Operation(op Op, operands ...NodeID) (NodeID, error) {
	id := NodeID(len(g.nodes))

	min, variadic := op.arity()
	switch {
	case variadic && len(operands) < min:
		return 0, fmt.Errorf("graph: node %d (%s): %w: got %d operands, want at least %d",
			id, op.Kind(), ErrArity, len(operands), min)
	case !variadic && len(operands) != min:
		return 0, fmt.Errorf("graph: node %d (%s): %w: got %d operands, want exactly %d",
			id, op.Kind(), ErrArity, len(operands), min)
	}

	for _, src := range operands {
		if src < 0 || src >= id {
			return 0, fmt.Errorf("graph: node %d (%s): %w: operand %d",
				id, op.Kind(), ErrForwardReference, src)
		}
		if g.nodes[src].Kind == NodeOutput {
			return 0, fmt.Errorf("graph: node %d (%s): %w: operand %d",
				id, op.Kind(), ErrOutputOperand, src)
		}
	}

	g.nodes = append(g.nodes, Node{
		Kind:     NodeOperation,
		Op:       op,
		Operands: append([]NodeID(nil), operands...),
	})
	return id, nil
}

// Output appends an output marker for source and returns the marker's own
// id (distinct from source). The source must be an input or operation node.
// Multiple outputs are permitted; each reports independently, in
// declaration order.
func (g *Graph) Output(source NodeID) (NodeID, error) {
	id := NodeID(len(g.nodes))
	if source < 0 || source >= id {
		return 0, fmt.Errorf("graph: output node %d: %w: source %d",
			id, ErrForwardReference, source)
	}
	if g.nodes[source].Kind == NodeOutput {
		return 0, fmt.Errorf("graph: output node %d: %w: source %d",
			id, ErrOutputOperand, source)
	}
	g.nodes = append(g.nodes, Node{Kind: NodeOutput, Source: source})
	g.outputIDs = append(g.outputIDs, id)
	return id, nil
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumInputs returns the number of input nodes, which is the length of the
// value vector an evaluation expects and of every gradient it reports.
func (g *Graph) NumInputs() int { return len(g.inputIDs) }

// Node returns the node with the given id. The id must be in
// [0, NumNodes()).
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// InputIDs returns the ids of the input nodes in declaration order. The
// returned slice is owned by the graph and must not be modified.
func (g *Graph) InputIDs() []NodeID { return g.inputIDs }

// OutputIDs returns the ids of the output marker nodes in declaration
// order. The returned slice is owned by the graph and must not be modified.
func (g *Graph) OutputIDs() []NodeID { return g.outputIDs }
