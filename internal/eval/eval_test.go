package eval

import (
	"testing"

	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/value"
)

func TestEvalLiterals(t *testing.T) {
	e := New()
	cases := []struct {
		node ast.Node
		want value.Value
	}{
		{&ast.StrLit{Value: "hi"}, value.Str("hi")},
		{&ast.NumLit{Value: 2}, value.Num(2)},
		{&ast.BoolLit{Value: true}, value.Boolean(true)},
	}
	for _, c := range cases {
		got, err := e.Eval(c.node, nil)
		if err != nil {
			t.Fatalf("Eval(%#v): %v", c.node, err)
		}
		if !got.Equal(c.want) {
			t.Errorf("Eval(%#v) = %#v, want %#v", c.node, got, c.want)
		}
	}
}

func TestEvalIdentifierFound(t *testing.T) {
	e := New()
	got, err := e.Eval(&ast.Identifier{Name: "name"}, map[string]string{"name": "Ada"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != value.KindStr || got.AsStr() != "Ada" {
		t.Errorf("got %#v", got)
	}
}

func TestEvalIdentifierMissing(t *testing.T) {
	e := New()
	_, err := e.Eval(&ast.Identifier{Name: "missing"}, map[string]string{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestEvalUnboundCall(t *testing.T) {
	e := New()
	_, err := e.Eval(&ast.FunctionCall{Name: "Mystery"}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestEvalBoundCallInvokesFn(t *testing.T) {
	e := New()
	called := false
	node := &ast.BoundCall{
		Name: "Const42",
		Fn: func(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
			called = true
			return value.Num(42), nil
		},
	}
	got, err := e.Eval(node, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("callable was not invoked")
	}
	if got.AsNum() != 42 {
		t.Errorf("got %#v", got)
	}
}

func TestEvalArray(t *testing.T) {
	e := New()
	node := &ast.ArrayLit{Elements: []ast.Node{&ast.NumLit{Value: 1}, &ast.NumLit{Value: 2}}}
	got, err := e.Eval(node, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != value.KindArray || len(got.AsArray()) != 2 {
		t.Errorf("got %#v", got)
	}
}
