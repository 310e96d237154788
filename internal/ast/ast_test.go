package ast

import "testing"

func TestStringRendering(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{&StrLit{Value: "hi"}, `"hi"`},
		{&NumLit{Value: 1.5}, "1.5"},
		{&BoolLit{Value: true}, "true"},
		{&Identifier{Name: "foo"}, "foo"},
		{&ArrayLit{Elements: []Node{&NumLit{Value: 1}, &NumLit{Value: 2}}}, "[1, 2]"},
		{&FunctionCall{Name: "Concat", Args: []Node{&StrLit{Value: "a"}, &StrLit{Value: "b"}}}, `Concat("a", "b")`},
	}
	for _, c := range cases {
		if got := c.node.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
