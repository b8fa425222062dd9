// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hclgraph loads computation graphs from HCL definition files.
//
// Each block in a definition file expands into one graph builder call, in
// file order. Op operands refer to earlier blocks by name:
//
//	input "x" {}
//
//	op "x_sq" {
//	  fn       = "pow"
//	  exponent = 2
//	  operands = ["x"]
//	}
//
//	output "result" {
//	  source = "x_sq"
//	}
package hclgraph

import "github.com/tangent-ml/tangent/internal/hclgraph"

// Model is a graph loaded from a definition file, together with the input
// and output names needed to label evaluation results.
type Model = hclgraph.Model

// Load parses the graph definition file at path and builds its graph.
func Load(path string) (*Model, error) { return hclgraph.Load(path) }

// LoadBytes parses an in-memory graph definition. The filename is used in
// diagnostics only.
func LoadBytes(src []byte, filename string) (*Model, error) {
	return hclgraph.LoadBytes(src, filename)
}
