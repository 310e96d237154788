package builtins

import (
	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/coerce"
	"github.com/cwbudde/exprscript/internal/liketoregex"
	"github.com/cwbudde/exprscript/internal/value"
)

// IsNull implements IsNull/IsBlank(0 or 1 arg): true if there is no argument
// or the argument evaluates to Null; false otherwise.
func IsNull(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := atMost("IsNull", 1, args); err != nil {
		return value.Null, err
	}
	if len(args) == 0 {
		return value.Boolean(true), nil
	}
	v, err := ev.Eval(args[0], values)
	if err != nil {
		return value.Null, err
	}
	return value.Boolean(v.Kind() == value.KindNull), nil
}

// AreEquals implements AreEquals(a,b): §4.A structural equality, with Null
// unequal to everything including another Null. No coercion is applied.
func AreEquals(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("AreEquals", 2, args); err != nil {
		return value.Null, err
	}
	a, err := ev.Eval(args[0], values)
	if err != nil {
		return value.Null, err
	}
	b, err := ev.Eval(args[1], values)
	if err != nil {
		return value.Null, err
	}
	return value.Boolean(a.Equal(b)), nil
}

// In implements In(needle, v1, v2, ...): true iff any vi equals needle under
// AreEquals's rule.
func In(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := atLeast("In", 2, args); err != nil {
		return value.Null, err
	}
	needle, err := ev.Eval(args[0], values)
	if err != nil {
		return value.Null, err
	}
	for _, a := range args[1:] {
		v, err := ev.Eval(a, values)
		if err != nil {
			return value.Null, err
		}
		if needle.Equal(v) {
			return value.Boolean(true), nil
		}
	}
	return value.Boolean(false), nil
}

// InLike implements InLike(needle, p1, p2, ...): true iff any pi, read as a
// LIKE pattern, matches the stringified needle, case-insensitively.
func InLike(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := atLeast("InLike", 2, args); err != nil {
		return value.Null, err
	}
	needleV, err := ev.Eval(args[0], values)
	if err != nil {
		return value.Null, err
	}
	needle, err := coerce.ToString(needleV)
	if err != nil {
		return value.Null, err
	}
	for _, a := range args[1:] {
		patV, err := ev.Eval(a, values)
		if err != nil {
			return value.Null, err
		}
		pattern, err := coerce.ToString(patV)
		if err != nil {
			return value.Null, err
		}
		ok, err := liketoregex.Match(needle, pattern)
		if err != nil {
			return value.Null, err
		}
		if ok {
			return value.Boolean(true), nil
		}
	}
	return value.Boolean(false), nil
}

// Like implements IsLike/Like(text, pattern): a single case-insensitive LIKE
// match.
func Like(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Like", 2, args); err != nil {
		return value.Null, err
	}
	vals, err := evalAll(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	text, err := coerce.ToString(vals[0])
	if err != nil {
		return value.Null, err
	}
	pattern, err := coerce.ToString(vals[1])
	if err != nil {
		return value.Null, err
	}
	ok, err := liketoregex.Match(text, pattern)
	if err != nil {
		return value.Null, err
	}
	return value.Boolean(ok), nil
}

// FirstNotNull implements FirstNotNull/FirstNotEmpty(...): returns the first
// argument whose evaluation is not Null, short-circuiting before evaluating
// the rest; Null if every argument is Null (or there are none).
func FirstNotNull(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	for _, a := range args {
		v, err := ev.Eval(a, values)
		if err != nil {
			return value.Null, err
		}
		if v.Kind() != value.KindNull {
			return v, nil
		}
	}
	return value.Null, nil
}
