package graph

// NodeID is an index into a graph's node list. IDs are assigned in
// construction order, are never reused, and stay valid for the lifetime of
// the graph.
type NodeID int

// NodeKind discriminates the node variants.
type NodeKind uint8

const (
	// NodeInput is a leaf whose value is supplied at evaluation time by
	// declaration position.
	NodeInput NodeKind = iota

	// NodeOperation applies an operator to previously created nodes.
	NodeOperation

	// NodeOutput marks a node whose value and gradient are reported to the
	// caller.
	NodeOutput
)

// Node is one entry in a graph's node list. Which fields are meaningful
// depends on Kind; evaluation code switches on Kind exhaustively.
type Node struct {
	Kind NodeKind

	// Input fields. Name is advisory metadata only; InputPos (declaration
	// order) determines the input slot and the tangent column the node seeds.
	Name     string
	InputPos int

	// Operation fields. Every operand id is strictly less than the node's
	// own id, so ascending id order is a topological order.
	Op       Op
	Operands []NodeID

	// Output field: the node whose value and tangent row this marker
	// reports.
	Source NodeID
}
