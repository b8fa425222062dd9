package graph

import "errors"

// Construction-time errors. Structural violations fail at the offending
// builder call so that a malformed graph never reaches an evaluator.
var (
	// ErrArity reports an Operation call whose operand count does not match
	// the operator's arity.
	ErrArity = errors.New("operand count does not match operator arity")

	// ErrForwardReference reports an operand or source id that does not
	// refer to an already created node.
	ErrForwardReference = errors.New("operand does not reference an earlier node")

	// ErrOutputOperand reports an operand or source id that refers to an
	// output marker. Markers mirror their source during evaluation and are
	// not evaluable nodes themselves.
	ErrOutputOperand = errors.New("output marker cannot be used as an operand")
)
