package hclgraph

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/tangent-ml/tangent/internal/graph"
)

// Model is a graph loaded from a definition file, together with the names
// needed to label inputs and evaluation results.
type Model struct {
	Graph       *graph.Graph
	InputNames  []string
	OutputNames []string
}

// hclFile mirrors the top-level structure of a graph definition file.
type hclFile struct {
	Inputs  []*hclInput  `hcl:"input,block"`
	Ops     []*hclOp     `hcl:"op,block"`
	Outputs []*hclOutput `hcl:"output,block"`
}

type hclInput struct {
	Name string `hcl:"name,label"`
}

type hclOp struct {
	Name     string   `hcl:"name,label"`
	Fn       string   `hcl:"fn"`
	Factor   *float64 `hcl:"factor,optional"`
	Exponent *float64 `hcl:"exponent,optional"`
	Operands []string `hcl:"operands"`
}

type hclOutput struct {
	Name   string `hcl:"name,label"`
	Source string `hcl:"source"`
}

// evalContext exposes the constants usable in attribute expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
			"e":  cty.NumberFloatVal(math.E),
		},
	}
}

// Load parses the graph definition file at path and builds its graph.
func Load(path string) (*Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hclgraph: failed to parse %s: %w", path, diags)
	}
	return build(file, path)
}

// LoadBytes parses an in-memory graph definition. The filename is used in
// diagnostics only.
func LoadBytes(src []byte, filename string) (*Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hclgraph: failed to parse %s: %w", filename, diags)
	}
	return build(file, filename)
}

// build translates a decoded file into builder calls. Inputs are declared
// first (in file order, which fixes the gradient columns), then ops in file
// order, then outputs.
func build(file *hcl.File, filename string) (*Model, error) {
	var parsed hclFile
	diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hclgraph: failed to decode %s: %w", filename, diags)
	}

	g := graph.New()
	m := &Model{Graph: g}

	// The builder treats names as advisory metadata, but the file format
	// resolves operand references by name, so duplicates are rejected here.
	ids := make(map[string]graph.NodeID)
	declare := func(name string, id graph.NodeID) error {
		if _, exists := ids[name]; exists {
			return fmt.Errorf("hclgraph: %s: duplicate node name %q", filename, name)
		}
		ids[name] = id
		return nil
	}

	for _, in := range parsed.Inputs {
		id := g.Input(in.Name)
		if err := declare(in.Name, id); err != nil {
			return nil, err
		}
		m.InputNames = append(m.InputNames, in.Name)
	}

	for _, opBlock := range parsed.Ops {
		op, err := buildOp(opBlock)
		if err != nil {
			return nil, fmt.Errorf("hclgraph: %s: op %q: %w", filename, opBlock.Name, err)
		}
		operands := make([]graph.NodeID, 0, len(opBlock.Operands))
		for _, ref := range opBlock.Operands {
			id, ok := ids[ref]
			if !ok {
				return nil, fmt.Errorf("hclgraph: %s: op %q: operand %q is not a declared input or op",
					filename, opBlock.Name, ref)
			}
			operands = append(operands, id)
		}
		id, err := g.Operation(op, operands...)
		if err != nil {
			return nil, fmt.Errorf("hclgraph: %s: op %q: %w", filename, opBlock.Name, err)
		}
		if err := declare(opBlock.Name, id); err != nil {
			return nil, err
		}
	}

	for _, out := range parsed.Outputs {
		id, ok := ids[out.Source]
		if !ok {
			return nil, fmt.Errorf("hclgraph: %s: output %q: source %q is not a declared input or op",
				filename, out.Name, out.Source)
		}
		if _, err := g.Output(id); err != nil {
			return nil, fmt.Errorf("hclgraph: %s: output %q: %w", filename, out.Name, err)
		}
		m.OutputNames = append(m.OutputNames, out.Name)
	}

	return m, nil
}

// buildOp maps an op block to an operator, checking that the block carries
// the parameter its fn requires.
func buildOp(block *hclOp) (graph.Op, error) {
	switch block.Fn {
	case "scale":
		if block.Factor == nil {
			return graph.Op{}, fmt.Errorf(`fn "scale" requires a factor attribute`)
		}
		return graph.Scale(*block.Factor), nil
	case "sin":
		return graph.Sin(), nil
	case "cos":
		return graph.Cos(), nil
	case "pow":
		if block.Exponent == nil {
			return graph.Op{}, fmt.Errorf(`fn "pow" requires an exponent attribute`)
		}
		return graph.Pow(*block.Exponent), nil
	case "add":
		return graph.Add(), nil
	case "mul":
		return graph.Mul(), nil
	default:
		return graph.Op{}, fmt.Errorf("unknown fn %q (valid: scale, sin, cos, pow, add, mul)", block.Fn)
	}
}
