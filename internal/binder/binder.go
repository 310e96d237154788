// Package binder implements the single pass of spec.md §4.C: resolving
// FunctionCall names against a registry and rewriting matched nodes into
// BoundCall nodes. Arguments are always bound recursively, including under
// calls whose own name did not resolve, so a nested call to a known
// function still gets wired up.
package binder

import "github.com/cwbudde/exprscript/internal/ast"

// Registry looks up a Callable by exact, case-sensitive function name.
type Registry interface {
	Lookup(name string) (ast.Callable, bool)
}

// Bind walks node once, replacing every resolvable ast.FunctionCall with an
// ast.BoundCall. Unresolvable calls are left as FunctionCall, matching
// §4.C: "evaluation will later fail with 'unknown function'".
func Bind(node ast.Node, reg Registry) ast.Node {
	switch n := node.(type) {
	case *ast.FunctionCall:
		args := bindAll(n.Args, reg)
		if fn, ok := reg.Lookup(n.Name); ok {
			return &ast.BoundCall{Name: n.Name, Args: args, Fn: fn}
		}
		return &ast.FunctionCall{Name: n.Name, Args: args}

	case *ast.ArrayLit:
		return &ast.ArrayLit{Elements: bindAll(n.Elements, reg)}

	default:
		// StrLit, NumLit, BoolLit, Identifier, and an already-bound
		// BoundCall (Bind is not expected to run twice, but is a no-op if
		// it does) pass through unchanged.
		return node
	}
}

func bindAll(nodes []ast.Node, reg Registry) []ast.Node {
	bound := make([]ast.Node, len(nodes))
	for i, n := range nodes {
		bound[i] = Bind(n, reg)
	}
	return bound
}
