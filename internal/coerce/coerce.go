// Package coerce implements the coercion kernel of spec.md §4.D: uniform
// conversion of an already-evaluated value.Value to string, number, integer,
// boolean, or date. Every conversion here operates on a value.Value that the
// caller has already produced by evaluating an AST node — coerce itself
// never evaluates anything, keeping it a leaf package with no dependency on
// internal/eval.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/exprscript/internal/value"
)

// notAType renders §4.D's uniform failure message:
// "'<stringified>' is not a <type>".
func notAType(v value.Value, typ string) error {
	s := v.String()
	return fmt.Errorf("'%s' is not a %s", s, typ)
}

// ToString implements to-string: accepts any final value, passes Str
// through as-is, stringifies other final variants per §4.A, and rejects
// non-final values (Array).
func ToString(v value.Value) (string, error) {
	if !v.IsFinal() {
		return "", fmt.Errorf("'%s' is not a final value and cannot be converted to a string", v.Kind())
	}
	return v.String(), nil
}

// ToNumber implements to-number: Num values pass through unchanged;
// anything else is stringified and parsed as a double, after optionally
// replacing a single caller-supplied decimal separator with '.'. Passing 0
// for sep means "no separator override".
func ToNumber(v value.Value, sep rune) (float64, error) {
	if v.Kind() == value.KindNum {
		return v.AsNum(), nil
	}
	s, err := ToString(v)
	if err != nil {
		return 0, err
	}
	if sep != 0 {
		s = strings.ReplaceAll(s, string(sep), ".")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, notAType(v, "number")
	}
	return n, nil
}

// ToInteger implements to-integer: Num values truncate toward zero; Str
// values parse as a signed integer; anything else errors.
func ToInteger(v value.Value) (int64, error) {
	switch v.Kind() {
	case value.KindNum:
		return int64(v.AsNum()), nil
	case value.KindStr:
		n, err := strconv.ParseInt(strings.TrimSpace(v.AsStr()), 10, 64)
		if err != nil {
			return 0, notAType(v, "number")
		}
		return n, nil
	default:
		return 0, notAType(v, "number")
	}
}

// ToBoolean implements to-boolean: Boolean passes through; Num is true iff
// equal to 1; Str is true iff it matches (case-insensitively, surrounding
// whitespace allowed) "true" or "1"; anything else errors.
//
// Note this is not the inverse of "false" detection — per spec.md §4.D, any
// string that is neither "true"/"1" (nor "false"/"0") is a coercion error,
// not an implicit false; only an explicit "true"/"1" match yields true and
// every other string is rejected unless it is a recognized false spelling.
func ToBoolean(v value.Value) (bool, error) {
	switch v.Kind() {
	case value.KindBoolean:
		return v.AsBoolean(), nil
	case value.KindNum:
		return v.AsNum() == 1, nil
	case value.KindStr:
		s := strings.ToLower(strings.TrimSpace(v.AsStr()))
		switch s {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return false, notAType(v, "boolean")
	default:
		return false, notAType(v, "boolean")
	}
}

// dateLayouts are the RFC3339/ISO UTC date-time shapes to-date accepts,
// tried in order. Layouts with an explicit offset or 'Z' are parsed then
// have their offset dropped to produce a naive wall-clock time, per §4.D.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToDate implements to-date (no defaults): Date values pass through;
// anything else is stringified and parsed as an RFC3339/ISO UTC date-time,
// with the offset then dropped to a naive wall-clock value.
func ToDate(v value.Value) (time.Time, error) {
	if v.Kind() == value.KindDate {
		return v.AsDate(), nil
	}
	s, err := ToString(v)
	if err != nil {
		return time.Time{}, err
	}
	s = strings.TrimSpace(s)
	var parsed time.Time
	var perr error
	for _, layout := range dateLayouts {
		parsed, perr = time.Parse(layout, s)
		if perr == nil {
			break
		}
	}
	if perr != nil {
		return time.Time{}, notAType(v, "date")
	}
	y, m, d := parsed.Date()
	hh, mm, ss := parsed.Clock()
	return time.Date(y, m, d, hh, mm, ss, parsed.Nanosecond(), time.UTC), nil
}

// DateDefaults names which of the six date/time components should be
// forced to 1 after parsing — used by the two-date comparison functions
// (DateEquals, DateLower, ...) that let callers ignore certain fields.
type DateDefaults struct {
	IgnoreYear, IgnoreMonth, IgnoreDay      bool
	IgnoreHour, IgnoreMinute, IgnoreSecond bool
}

// Any reports whether at least one flag is set.
func (d DateDefaults) Any() bool {
	return d.IgnoreYear || d.IgnoreMonth || d.IgnoreDay || d.IgnoreHour || d.IgnoreMinute || d.IgnoreSecond
}

// ToDateWithDefaults implements to-date (with default flags): parses as
// ToDate does, then replaces each flagged component with 1.
func ToDateWithDefaults(v value.Value, flags DateDefaults) (time.Time, error) {
	t, err := ToDate(v)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	if flags.IgnoreYear {
		year = 1
	}
	if flags.IgnoreMonth {
		month = 1
	}
	if flags.IgnoreDay {
		day = 1
	}
	if flags.IgnoreHour {
		hour = 1
	}
	if flags.IgnoreMinute {
		min = 1
	}
	if flags.IgnoreSecond {
		sec = 1
	}
	return time.Date(year, time.Month(month), day, hour, min, sec, t.Nanosecond(), time.UTC), nil
}
