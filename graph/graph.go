// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the computation graph builder for forward-mode
// automatic differentiation.
//
// A graph is built by appending input, operation, and output nodes; each
// call returns the new node's id, and operations may only reference ids
// returned by earlier calls. Structural mistakes (wrong operand count for
// an operator, references to not-yet-created nodes) are rejected at the
// offending call, never at evaluation time.
//
// Example:
//
//	g := graph.New()
//	x := g.Input("x")
//	y := g.Input("y")
//
//	xSq, _ := g.Operation(graph.Pow(2), x)
//	ySin, _ := g.Operation(graph.Sin(), y)
//	sum, _ := g.Operation(graph.Add(), xSq, ySin)
//	g.Output(sum)
package graph

import "github.com/tangent-ml/tangent/internal/graph"

// Graph is an append-only computation graph.
type Graph = graph.Graph

// NodeID identifies a node within a graph. IDs are assigned in construction
// order and are never reused.
type NodeID = graph.NodeID

// Node is one entry in a graph's node list.
type Node = graph.Node

// Op is an operator drawn from the closed set of six differentiable
// operators.
type Op = graph.Op

// Kind identifies an operator from the closed set.
type Kind = graph.Kind

// Construction-time errors.
var (
	ErrArity            = graph.ErrArity
	ErrForwardReference = graph.ErrForwardReference
	ErrOutputOperand    = graph.ErrOutputOperand
)

// New creates an empty graph.
func New() *Graph { return graph.New() }

// Scale returns the operator y = x·factor.
func Scale(factor float64) Op { return graph.Scale(factor) }

// Sin returns the operator y = sin(x).
func Sin() Op { return graph.Sin() }

// Cos returns the operator y = cos(x).
func Cos() Op { return graph.Cos() }

// Pow returns the operator y = x^exponent.
func Pow(exponent float64) Op { return graph.Pow(exponent) }

// Add returns the n-ary operator y = Σxᵢ.
func Add() Op { return graph.Add() }

// Mul returns the n-ary operator y = Πxᵢ.
func Mul() Op { return graph.Mul() }
