package builtins

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/coerce"
	"github.com/cwbudde/exprscript/internal/value"
)

func formatNum(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// checkedOp runs a two-operand float64 operation and renders §7's
// arithmetic-error message when the source would have panicked/overflowed:
// the target language's arithmetic never traps, so a non-finite result
// (from division by zero, an overflowing product, ...) is treated the same
// as the panic the original engine catches.
func checkedOp(verb, preposition string, a, b float64, result float64) (value.Value, error) {
	if math.IsInf(result, 0) {
		return value.Null, fmt.Errorf("Couldn't %s %s %s %s: overflow", verb, formatNum(a), preposition, formatNum(b))
	}
	if math.IsNaN(result) {
		return value.Null, fmt.Errorf("Couldn't %s %s %s %s", verb, formatNum(a), preposition, formatNum(b))
	}
	return value.Num(result), nil
}

func evalNumber(ev ast.Evaluator, node ast.Node, values map[string]string) (float64, error) {
	v, err := ev.Eval(node, values)
	if err != nil {
		return 0, err
	}
	return coerce.ToNumber(v, 0)
}

// Abs implements Abs(n).
func Abs(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Abs", 1, args); err != nil {
		return value.Null, err
	}
	n, err := evalNumber(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	return value.Num(math.Abs(n)), nil
}

// Product implements Product(...): multiplies every argument in order.
func Product(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := atLeast("Product", 1, args); err != nil {
		return value.Null, err
	}
	acc, err := evalNumber(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	for _, a := range args[1:] {
		n, err := evalNumber(ev, a, values)
		if err != nil {
			return value.Null, err
		}
		next := acc * n
		if v, err := checkedOp("multiply", "by", acc, n, next); err != nil {
			return value.Null, err
		} else {
			acc = v.AsNum()
		}
	}
	return value.Num(acc), nil
}

// Sum implements Sum(...): adds every argument in order.
func Sum(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := atLeast("Sum", 1, args); err != nil {
		return value.Null, err
	}
	acc, err := evalNumber(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	for _, a := range args[1:] {
		n, err := evalNumber(ev, a, values)
		if err != nil {
			return value.Null, err
		}
		next := acc + n
		if v, err := checkedOp("add", "to", acc, n, next); err != nil {
			return value.Null, err
		} else {
			acc = v.AsNum()
		}
	}
	return value.Num(acc), nil
}

// Divide implements Divide(a,b).
func Divide(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Divide", 2, args); err != nil {
		return value.Null, err
	}
	a, b, err := evalTwoNumbers(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	return checkedOp("divide", "by", a, b, a/b)
}

// Subtract implements Subtract(a,b).
func Subtract(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Subtract", 2, args); err != nil {
		return value.Null, err
	}
	a, b, err := evalTwoNumbers(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	return checkedOp("subtract", "from", a, b, a-b)
}

// Modulo implements Mod/Modulo(a,b).
func Modulo(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Modulo", 2, args); err != nil {
		return value.Null, err
	}
	a, b, err := evalTwoNumbers(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	return checkedOp("module", "by", a, b, math.Mod(a, b))
}

func evalTwoNumbers(ev ast.Evaluator, args []ast.Node, values map[string]string) (float64, float64, error) {
	a, err := evalNumber(ev, args[0], values)
	if err != nil {
		return 0, 0, err
	}
	b, err := evalNumber(ev, args[1], values)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// Round implements Round(n, digits): digits clamped to >= 0, rounding via
// scale-and-round-half-away-from-zero on the scaled magnitude.
func Round(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Round", 2, args); err != nil {
		return value.Null, err
	}
	n, err := evalNumber(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	digitsF, err := evalNumber(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	digits := int(digitsF)
	if digits < 0 {
		digits = 0
	}
	scale := math.Pow(10, float64(digits))
	scaled := n * scale
	rounded := math.Trunc(scaled + math.Copysign(0.5, scaled))
	return value.Num(rounded / scale), nil
}

func numComparison(name string, cmp func(a, b float64) bool) ast.Callable {
	return func(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
		if err := exactly(name, 2, args); err != nil {
			return value.Null, err
		}
		a, b, err := evalTwoNumbers(ev, args, values)
		if err != nil {
			return value.Null, err
		}
		return value.Boolean(cmp(a, b)), nil
	}
}

// GreaterThan implements GreaterThan/Gt(a,b).
var GreaterThan = numComparison("GreaterThan", func(a, b float64) bool { return a > b })

// LowerThan implements LowerThan/Lt(a,b).
var LowerThan = numComparison("LowerThan", func(a, b float64) bool { return a < b })

// GreaterThanOrEqual implements GreaterThanOrEqual/Gtoe(a,b).
var GreaterThanOrEqual = numComparison("GreaterThanOrEqual", func(a, b float64) bool { return a >= b })

// LowerThanOrEqual implements LowerThanOrEqual/Ltoe(a,b).
var LowerThanOrEqual = numComparison("LowerThanOrEqual", func(a, b float64) bool { return a <= b })
