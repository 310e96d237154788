package coerce

import (
	"testing"
	"time"

	"github.com/cwbudde/exprscript/internal/value"
)

func TestToStringRejectsArray(t *testing.T) {
	_, err := ToString(value.Array([]value.Value{value.Num(1)}))
	if err == nil {
		t.Fatal("expected error for array")
	}
}

func TestToStringVariants(t *testing.T) {
	cases := []struct {
		v    value.Value
		want string
	}{
		{value.Null, ""},
		{value.Str("hi"), "hi"},
		{value.Boolean(true), "true"},
		{value.Boolean(false), "false"},
		{value.Num(1.5), "1.5"},
	}
	for _, c := range cases {
		got, err := ToString(c.v)
		if err != nil {
			t.Fatalf("ToString(%#v): %v", c.v, err)
		}
		if got != c.want {
			t.Errorf("ToString(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestToNumberWithSeparator(t *testing.T) {
	n, err := ToNumber(value.Str("1,5"), ',')
	if err != nil {
		t.Fatal(err)
	}
	if n != 1.5 {
		t.Errorf("got %v, want 1.5", n)
	}
}

func TestToNumberInvalid(t *testing.T) {
	if _, err := ToNumber(value.Str("abc"), 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestToIntegerTruncates(t *testing.T) {
	n, err := ToInteger(value.Num(3.9))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("got %v, want 3", n)
	}
	n, err = ToInteger(value.Num(-3.9))
	if err != nil {
		t.Fatal(err)
	}
	if n != -3 {
		t.Errorf("got %v, want -3", n)
	}
}

func TestToBoolean(t *testing.T) {
	cases := []struct {
		v       value.Value
		want    bool
		wantErr bool
	}{
		{value.Boolean(true), true, false},
		{value.Num(1), true, false},
		{value.Num(2), false, false},
		{value.Str(" TRUE "), true, false},
		{value.Str("1"), true, false},
		{value.Str("nope"), false, true},
	}
	for _, c := range cases {
		got, err := ToBoolean(c.v)
		if (err != nil) != c.wantErr {
			t.Errorf("ToBoolean(%#v) err = %v, wantErr %v", c.v, err, c.wantErr)
			continue
		}
		if err == nil && got != c.want {
			t.Errorf("ToBoolean(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestToDateDropsOffset(t *testing.T) {
	d, err := ToDate(value.Str("2020-01-31T12:00:00Z"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", d.Location())
	}
	if d.Year() != 2020 || d.Month() != time.January || d.Day() != 31 {
		t.Errorf("got %v", d)
	}
}

func TestToDateWithDefaultsSetsFlaggedComponentsToOne(t *testing.T) {
	base := value.Date(time.Date(2020, time.March, 15, 10, 30, 45, 0, time.UTC))
	d, err := ToDateWithDefaults(base, DateDefaults{IgnoreYear: true, IgnoreDay: true})
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 1 || d.Day() != 1 {
		t.Errorf("got %v, want year=1 day=1", d)
	}
	if d.Month() != time.March {
		t.Errorf("month should be untouched, got %v", d.Month())
	}
}
