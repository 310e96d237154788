// Package builtins implements the ~70 built-in functions of spec.md §4.F:
// the misc/null, string, logical, math, and date/time categories, plus the
// registry that wires their aliases together for internal/binder.
//
// Every function here satisfies ast.Callable: it receives its arguments as
// still-unevaluated ast.Node children plus the identifier map, and calls
// back into the supplied ast.Evaluator to evaluate only the children it
// actually needs. That contract — kept from go-dws's Context-style builtin
// signature but adapted to lazy, node-based arguments — is what lets And,
// Or, Iif, FirstNotNull, ReplaceEquals, and ReplaceLike short-circuit.
package builtins

import (
	"fmt"

	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/value"
)

// arityError renders §7's arity message family. The exactly/at-most/at-least
// wording is taken verbatim from the Rust source's assert_exact_params_count
// /assert_max_params_count/assert_min_params_count; "between A and B
// parameters" is exprscript's own addition for the two-sided constraints the
// Rust source never needed.
func arityError(name, body string) error {
	return fmt.Errorf("Function %s should have %s", name, body)
}

func exactly(name string, n int, args []ast.Node) error {
	if len(args) != n {
		return arityError(name, fmt.Sprintf("exactly %d parameters", n))
	}
	return nil
}

func atMost(name string, n int, args []ast.Node) error {
	if len(args) > n {
		return arityError(name, fmt.Sprintf("no more than %d parameters", n))
	}
	return nil
}

func atLeast(name string, n int, args []ast.Node) error {
	if len(args) < n {
		return arityError(name, fmt.Sprintf("%d parameters or more", n))
	}
	return nil
}

func between(name string, lo, hi int, args []ast.Node) error {
	if len(args) < lo || len(args) > hi {
		return arityError(name, fmt.Sprintf("between %d and %d parameters", lo, hi))
	}
	return nil
}

// evalAll evaluates every node in args, in order, stopping at the first
// error. Used by Like, which has no short-circuit contract.
func evalAll(ev ast.Evaluator, args []ast.Node, values map[string]string) ([]value.Value, error) {
	out := make([]value.Value, len(args))
	for i, a := range args {
		v, err := ev.Eval(a, values)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
