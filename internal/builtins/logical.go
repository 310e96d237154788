package builtins

import (
	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/coerce"
	"github.com/cwbudde/exprscript/internal/value"
)

func evalBool(ev ast.Evaluator, node ast.Node, values map[string]string) (bool, error) {
	v, err := ev.Eval(node, values)
	if err != nil {
		return false, err
	}
	return coerce.ToBoolean(v)
}

// And implements And(...): short-circuits on the first false operand,
// never evaluating the remaining arguments.
func And(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := atLeast("And", 1, args); err != nil {
		return value.Null, err
	}
	for _, a := range args {
		b, err := evalBool(ev, a, values)
		if err != nil {
			return value.Null, err
		}
		if !b {
			return value.Boolean(false), nil
		}
	}
	return value.Boolean(true), nil
}

// Or implements Or(...): short-circuits on the first true operand, never
// evaluating the remaining arguments.
func Or(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := atLeast("Or", 1, args); err != nil {
		return value.Null, err
	}
	for _, a := range args {
		b, err := evalBool(ev, a, values)
		if err != nil {
			return value.Null, err
		}
		if b {
			return value.Boolean(true), nil
		}
	}
	return value.Boolean(false), nil
}

// Not implements Not(x).
func Not(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Not", 1, args); err != nil {
		return value.Null, err
	}
	b, err := evalBool(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	return value.Boolean(!b), nil
}

// Xor implements Xor(a,b).
func Xor(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Xor", 2, args); err != nil {
		return value.Null, err
	}
	a, err := evalBool(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	b, err := evalBool(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	return value.Boolean(a != b), nil
}

// Iif implements Iif/If(cond, then, else): evaluates only the chosen
// branch.
func Iif(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Iif", 3, args); err != nil {
		return value.Null, err
	}
	cond, err := evalBool(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	if cond {
		return ev.Eval(args[1], values)
	}
	return ev.Eval(args[2], values)
}
