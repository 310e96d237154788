// Package eval implements the evaluator of spec.md §4.E: a recursive,
// eager, single-threaded tree-walk over a bound AST plus an identifier map,
// producing a value.Value.
package eval

import (
	"fmt"

	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/value"
)

// Evaluator walks a bound AST. It holds no mutable state of its own — all
// per-call state is the identifier map passed into Eval — so one Evaluator
// may be shared and invoked concurrently, each call supplying its own map
// (§5).
type Evaluator struct{}

// New creates an Evaluator. There is currently nothing to configure; the
// constructor exists so callers aren't coupled to the zero value and so
// functional options can be added later without an API break.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates node against values, implementing §4.E node-by-node.
func (e *Evaluator) Eval(node ast.Node, values map[string]string) (value.Value, error) {
	switch n := node.(type) {
	case *ast.StrLit:
		return value.Str(n.Value), nil
	case *ast.NumLit:
		return value.Num(n.Value), nil
	case *ast.BoolLit:
		return value.Boolean(n.Value), nil
	case *ast.ArrayLit:
		elems := make([]value.Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.Eval(el, values)
			if err != nil {
				return value.Null, err
			}
			elems[i] = v
		}
		return value.Array(elems), nil
	case *ast.Identifier:
		s, ok := values[n.Name]
		if !ok {
			return value.Null, fmt.Errorf("Unable to find value for identifier named '%s'", n.Name)
		}
		return value.Str(s), nil
	case *ast.FunctionCall:
		return value.Null, fmt.Errorf("Unable to find the function named '%s'", n.Name)
	case *ast.BoundCall:
		return n.Fn(e, n.Args, values)
	default:
		return value.Null, fmt.Errorf("eval: unknown node type %T", node)
	}
}
