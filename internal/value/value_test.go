package value

import (
	"testing"
	"time"
)

func TestStringRendersEachVariant(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null, ""},
		{"str", Str("hi"), "hi"},
		{"true", Boolean(true), "true"},
		{"false", Boolean(false), "false"},
		{"num", Num(1.5), "1.5"},
		{"timespan", TimeSpan(90 * time.Second), "90"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%s: String() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDateStringOmitsZeroMilliseconds(t *testing.T) {
	v := Date(time.Date(2020, time.March, 5, 9, 7, 3, 0, time.UTC))
	if got, want := v.String(), "2020-03-05 09:07:03"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDateStringIncludesMilliseconds(t *testing.T) {
	v := Date(time.Date(2020, time.March, 5, 9, 7, 3, 250_000_000, time.UTC))
	if got, want := v.String(), "2020-03-05 09:07:03.250"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNullNeverEqual(t *testing.T) {
	if Null.Equal(Null) {
		t.Error("Null.Equal(Null) should be false")
	}
	if Null.Equal(Str("")) {
		t.Error("Null.Equal(Str(\"\")) should be false")
	}
}

func TestEqualIsVariantWise(t *testing.T) {
	if !Num(1).Equal(Num(1)) {
		t.Error("Num(1).Equal(Num(1)) should be true")
	}
	if Num(1).Equal(Str("1")) {
		t.Error("values of different kinds should never be equal")
	}
}

func TestArrayEqualIsElementWise(t *testing.T) {
	a := Array([]Value{Num(1), Str("x")})
	b := Array([]Value{Num(1), Str("x")})
	c := Array([]Value{Num(1), Str("y")})
	if !a.Equal(b) {
		t.Error("equal-element arrays should be equal")
	}
	if a.Equal(c) {
		t.Error("arrays differing by one element should not be equal")
	}
}

func TestIsFinal(t *testing.T) {
	if Array(nil).IsFinal() {
		t.Error("Array should not be final")
	}
	if !Null.IsFinal() {
		t.Error("Null should be final")
	}
}
