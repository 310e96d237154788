// Package ast defines the node types produced by the parser and rebuilt
// by the binder (spec.md §3, §4.B, §4.C).
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/exprscript/internal/value"
)

// Node is the common interface implemented by every AST node. String
// renders the node back in the expression language's own call syntax, used
// for debugging and by `exprscript parse` (mirrors go-dws's
// ast.Node.String(), used there for the same purpose).
type Node interface {
	String() string
	isNode()
}

// StrLit is a parsed, already-unescaped string literal.
type StrLit struct {
	Value string
}

func (*StrLit) isNode() {}
func (n *StrLit) String() string {
	return strconv.Quote(n.Value)
}

// NumLit is a parsed numeric literal.
type NumLit struct {
	Value float64
}

func (*NumLit) isNode() {}
func (n *NumLit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BoolLit is a parsed "true"/"false" literal.
type BoolLit struct {
	Value bool
}

func (*BoolLit) isNode() {}
func (n *BoolLit) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// ArrayLit is a parsed array literal. The binder rebuilds it with its
// elements bound recursively (§4.C); it stays an ArrayLit.
type ArrayLit struct {
	Elements []Node
}

func (*ArrayLit) isNode() {}
func (n *ArrayLit) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Identifier is a bare reference to a named value in the identifier map.
type Identifier struct {
	Name string
}

func (*Identifier) isNode() {}
func (n *Identifier) String() string {
	return n.Name
}

// FunctionCall is a parsed, not-yet-bound call: the binder has not found (or
// has not yet run over) a registry entry for Name.
type FunctionCall struct {
	Name string
	Args []Node
}

func (*FunctionCall) isNode() {}
func (n *FunctionCall) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(parts, ", "))
}

// Callable is the signature every bound function implementation satisfies.
// Per §4.E/§9, arguments are handed over as still-unevaluated AST nodes plus
// the identifier map, not pre-computed values — this is what lets And, Or,
// Iif, FirstNotNull, ReplaceEquals, and ReplaceLike short-circuit.
type Callable func(ev Evaluator, args []Node, values map[string]string) (value.Value, error)

// Evaluator is the minimal callback surface a Callable needs to evaluate one
// of its own argument nodes. internal/eval.Evaluator satisfies this; the
// indirection means internal/ast never needs to import internal/eval, which
// in turn imports internal/ast to walk the tree.
type Evaluator interface {
	Eval(node Node, values map[string]string) (value.Value, error)
}

// BoundCall is a FunctionCall whose name the binder resolved to a Callable
// (§4.C). Fn is shared (reference-counted, in spirit) across every BoundCall
// produced for the same function name — rebinding never copies the
// implementation, only the closure/pointer.
type BoundCall struct {
	Name string
	Args []Node
	Fn   Callable
}

func (*BoundCall) isNode() {}
func (n *BoundCall) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(parts, ", "))
}
