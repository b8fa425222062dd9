package graph

import "math"

// Kind identifies an operator from the closed set. Evaluation code switches
// on Kind exhaustively instead of dispatching through per-op interfaces,
// which keeps the evaluator a flat loop over the node list.
type Kind uint8

const (
	KindScale Kind = iota // x·k
	KindSin               // sin(x)
	KindCos               // cos(x)
	KindPow               // x^n
	KindAdd               // Σxᵢ
	KindMul               // Πxᵢ
)

// String returns the lowercase operator name.
func (k Kind) String() string {
	switch k {
	case KindScale:
		return "scale"
	case KindSin:
		return "sin"
	case KindCos:
		return "cos"
	case KindPow:
		return "pow"
	case KindAdd:
		return "add"
	case KindMul:
		return "mul"
	default:
		return "unknown"
	}
}

// Op is a single differentiable operator together with its parameter, if it
// has one. Ops are small value types and are copied freely.
type Op struct {
	kind Kind
	c    float64 // Scale factor or Pow exponent; zero otherwise.
}

// Scale returns the operator y = x·factor.
func Scale(factor float64) Op { return Op{kind: KindScale, c: factor} }

// Sin returns the operator y = sin(x).
func Sin() Op { return Op{kind: KindSin} }

// Cos returns the operator y = cos(x).
func Cos() Op { return Op{kind: KindCos} }

// Pow returns the operator y = x^exponent. Values and partials follow
// IEEE-754 math.Pow exactly, including NaN and Inf results near zero for
// fractional exponents.
func Pow(exponent float64) Op { return Op{kind: KindPow, c: exponent} }

// Add returns the n-ary operator y = Σxᵢ (at least two operands).
func Add() Op { return Op{kind: KindAdd} }

// Mul returns the n-ary operator y = Πxᵢ (at least two operands).
func Mul() Op { return Op{kind: KindMul} }

// Kind returns the operator's kind.
func (op Op) Kind() Kind { return op.kind }

// arity returns the required operand count. Variadic operators accept any
// count of at least min.
func (op Op) arity() (min int, variadic bool) {
	switch op.kind {
	case KindAdd, KindMul:
		return 2, true
	default:
		return 1, false
	}
}

// Eval applies the operator's value rule to the operand values.
func (op Op) Eval(args []float64) float64 {
	switch op.kind {
	case KindScale:
		return args[0] * op.c
	case KindSin:
		return math.Sin(args[0])
	case KindCos:
		return math.Cos(args[0])
	case KindPow:
		return math.Pow(args[0], op.c)
	case KindAdd:
		sum := 0.0
		for _, v := range args {
			sum += v
		}
		return sum
	case KindMul:
		prod := 1.0
		for _, v := range args {
			prod *= v
		}
		return prod
	}
	panic("graph: unknown operator kind " + op.kind.String())
}

// Partial evaluates ∂op/∂operandᵢ at the given operand values.
//
// Mul partials are positional: if the same node appears as two operands,
// each position is differentiated on its own and the chain-rule sum in the
// evaluator combines the contributions.
func (op Op) Partial(args []float64, i int) float64 {
	switch op.kind {
	case KindScale:
		return op.c
	case KindSin:
		return math.Cos(args[0])
	case KindCos:
		return -math.Sin(args[0])
	case KindPow:
		return op.c * math.Pow(args[0], op.c-1)
	case KindAdd:
		return 1
	case KindMul:
		prod := 1.0
		for j, v := range args {
			if j != i {
				prod *= v
			}
		}
		return prod
	}
	panic("graph: unknown operator kind " + op.kind.String())
}
