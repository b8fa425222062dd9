// Package hclgraph loads computation graphs from HCL definition files.
//
// The file format is a declarative surface over the graph builder: each
// block expands into exactly one builder call, in file order, so a loaded
// graph always satisfies the builder's topological invariants.
//
//	input "x" {}
//	input "y" {}
//
//	op "x_sq" {
//	  fn       = "pow"
//	  exponent = 2
//	  operands = ["x"]
//	}
//
//	op "y_sin" {
//	  fn       = "sin"
//	  operands = ["y"]
//	}
//
//	op "sum" {
//	  fn       = "add"
//	  operands = ["x_sq", "y_sin"]
//	}
//
//	output "result" {
//	  source = "sum"
//	}
//
// Input blocks declare the inputs in Jacobian column order. Op operands
// refer to earlier input or op blocks by name; referencing a name that is
// not yet declared is an error, which is how the builder's no-forward-
// reference rule surfaces in the file format. Attribute expressions may use
// the constants pi and e, e.g. `factor = 2 * pi`.
package hclgraph
