package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpEval(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		args []float64
		want float64
	}{
		{"scale", Scale(3), []float64{2}, 6},
		{"sin", Sin(), []float64{math.Pi / 2}, 1},
		{"cos", Cos(), []float64{0}, 1},
		{"pow", Pow(3), []float64{2}, 8},
		{"add", Add(), []float64{1, 2, 3}, 6},
		{"mul", Mul(), []float64{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.op.Eval(tt.args), 1e-12)
		})
	}
}

func TestOpPartial(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		args []float64
		i    int
		want float64
	}{
		{"scale", Scale(3), []float64{2}, 0, 3},
		{"sin", Sin(), []float64{0}, 0, 1},             // cos(0)
		{"cos", Cos(), []float64{math.Pi / 2}, 0, -1},  // -sin(π/2)
		{"pow", Pow(3), []float64{2}, 0, 12},           // 3·2²
		{"add first", Add(), []float64{1, 2, 3}, 0, 1},
		{"add last", Add(), []float64{1, 2, 3}, 2, 1},
		{"mul first", Mul(), []float64{2, 3, 4}, 0, 12}, // 3·4
		{"mul middle", Mul(), []float64{2, 3, 4}, 1, 8}, // 2·4
		{"mul last", Mul(), []float64{2, 3, 4}, 2, 6},   // 2·3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.op.Partial(tt.args, tt.i), 1e-12)
		})
	}
}

func TestMulPartialIsPositional(t *testing.T) {
	// The same value appearing at two positions is differentiated once per
	// position; deduplicating would lose half the chain-rule contribution.
	op := Mul()
	args := []float64{3, 3}

	assert.InDelta(t, 3.0, op.Partial(args, 0), 1e-12)
	assert.InDelta(t, 3.0, op.Partial(args, 1), 1e-12)
}

func TestPowPartialFollowsIEEEPow(t *testing.T) {
	// d/dx x^n = n·x^(n−1) with no special-casing at x=0: for n<1 the
	// result is whatever math.Pow produces.
	op := Pow(0.5)
	got := op.Partial([]float64{0}, 0)
	assert.True(t, math.IsInf(got, 1), "got %v, want +Inf", got)

	// Negative base with fractional exponent propagates NaN.
	assert.True(t, math.IsNaN(Pow(0.5).Eval([]float64{-1})))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "scale", KindScale.String())
	assert.Equal(t, "mul", KindMul.String())
	assert.Equal(t, "unknown", Kind(200).String())
}
