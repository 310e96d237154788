package builtins

import (
	"fmt"
	"time"

	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/coerce"
	"github.com/cwbudde/exprscript/internal/dateformat"
	"github.com/cwbudde/exprscript/internal/timezone"
	"github.com/cwbudde/exprscript/internal/value"
)

func evalDate(ev ast.Evaluator, node ast.Node, values map[string]string) (time.Time, error) {
	v, err := ev.Eval(node, values)
	if err != nil {
		return time.Time{}, err
	}
	return coerce.ToDate(v)
}

// Now implements Now(): the current UTC wall-clock.
func Now(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Now", 0, args); err != nil {
		return value.Null, err
	}
	return value.Date(time.Now().UTC()), nil
}

// Today implements Today(): Now with the time-of-day zeroed.
func Today(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Today", 0, args); err != nil {
		return value.Null, err
	}
	n := time.Now().UTC()
	return value.Date(time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)), nil
}

// Time implements Time(): the current time-of-day as a TimeSpan since UTC
// midnight.
func Time(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Time", 0, args); err != nil {
		return value.Null, err
	}
	n := time.Now().UTC()
	midnight := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return value.TimeSpan(n.Sub(midnight)), nil
}

// NowSpecificTimeZone implements NowSpecificTimeZone(tz?): the current time
// translated to the named Windows time zone (default UTC).
func NowSpecificTimeZone(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := atMost("NowSpecificTimeZone", 1, args); err != nil {
		return value.Null, err
	}
	if len(args) == 0 {
		return value.Date(time.Now().UTC()), nil
	}
	name, err := evalString(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	loc, err := timezone.Lookup(name)
	if err != nil {
		return value.Null, err
	}
	return value.Date(shiftToZone(time.Now().UTC(), loc)), nil
}

// shiftToZone adds loc's fixed offset to t's wall clock, returning a naive
// (still time.UTC-tagged) date-time — per §4.G, the engine never returns
// offset-aware dates, only the shifted naive wall clock.
func shiftToZone(t time.Time, loc *time.Location) time.Time {
	_, offsetSeconds := t.In(loc).Zone()
	return t.Add(time.Duration(offsetSeconds) * time.Second).UTC()
}

// Date implements Date(x): parse x via the coercion kernel's to-date rule.
func Date(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("Date", 1, args); err != nil {
		return value.Null, err
	}
	t, err := evalDate(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	return value.Date(t), nil
}

func dateComponent(name string, extract func(time.Time) int) ast.Callable {
	return func(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
		if err := exactly(name, 1, args); err != nil {
			return value.Null, err
		}
		t, err := evalDate(ev, args[0], values)
		if err != nil {
			return value.Null, err
		}
		return value.Num(float64(extract(t))), nil
	}
}

// Year implements Year(x).
var Year = dateComponent("Year", func(t time.Time) int { return t.Year() })

// Month implements Month(x).
var Month = dateComponent("Month", func(t time.Time) int { return int(t.Month()) })

// Day implements Day(x).
var Day = dateComponent("Day", func(t time.Time) int { return t.Day() })

func evalTwoDates(ev ast.Evaluator, args []ast.Node, values map[string]string) (time.Time, time.Time, error) {
	a, err := evalDate(ev, args[0], values)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	b, err := evalDate(ev, args[1], values)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return a, b, nil
}

// DateDiff implements DateDiff(a,b): a minus b as a signed TimeSpan.
func DateDiff(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("DateDiff", 2, args); err != nil {
		return value.Null, err
	}
	a, b, err := evalTwoDates(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	return value.TimeSpan(a.Sub(b)), nil
}

// DateDiffHours implements DateDiffHours(a,b): whole hours between a and b.
func DateDiffHours(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("DateDiffHours", 2, args); err != nil {
		return value.Null, err
	}
	a, b, err := evalTwoDates(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	return value.Num(float64(int64(a.Sub(b).Hours()))), nil
}

// DateDiffDays implements DateDiffDays(a,b): whole days between a and b.
func DateDiffDays(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("DateDiffDays", 2, args); err != nil {
		return value.Null, err
	}
	a, b, err := evalTwoDates(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	return value.Num(float64(int64(a.Sub(b).Hours() / 24))), nil
}

// daysPerMonth is the fixed approximation DateDiffMonths uses instead of a
// calendar-aware month count. Preserved literally from the source engine.
const daysPerMonth = 30.5

// DateDiffMonths implements DateDiffMonths(a,b): whole months between a
// and b, using a fixed 30.5-day month.
func DateDiffMonths(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("DateDiffMonths", 2, args); err != nil {
		return value.Null, err
	}
	a, b, err := evalTwoDates(ev, args, values)
	if err != nil {
		return value.Null, err
	}
	days := a.Sub(b).Hours() / 24
	return value.Num(float64(int64(days / daysPerMonth))), nil
}

// dateCompareFlags reads up to six trailing boolean arguments in the fixed
// order (ignore_year, ignore_month, ignore_day, ignore_hour, ignore_minute,
// ignore_second).
func dateCompareFlags(ev ast.Evaluator, args []ast.Node, values map[string]string) (coerce.DateDefaults, error) {
	var flags coerce.DateDefaults
	slots := []*bool{&flags.IgnoreYear, &flags.IgnoreMonth, &flags.IgnoreDay, &flags.IgnoreHour, &flags.IgnoreMinute, &flags.IgnoreSecond}
	for i := 0; i < len(args) && i < len(slots); i++ {
		b, err := evalBool(ev, args[i], values)
		if err != nil {
			return flags, err
		}
		*slots[i] = b
	}
	return flags, nil
}

func dateCompare(name string, cmp func(a, b time.Time) bool) ast.Callable {
	return func(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
		if err := between(name, 2, 8, args); err != nil {
			return value.Null, err
		}
		av, err := ev.Eval(args[0], values)
		if err != nil {
			return value.Null, err
		}
		bv, err := ev.Eval(args[1], values)
		if err != nil {
			return value.Null, err
		}
		flags, err := dateCompareFlags(ev, args[2:], values)
		if err != nil {
			return value.Null, err
		}
		a, err := coerce.ToDateWithDefaults(av, flags)
		if err != nil {
			return value.Null, err
		}
		b, err := coerce.ToDateWithDefaults(bv, flags)
		if err != nil {
			return value.Null, err
		}
		return value.Boolean(cmp(a, b)), nil
	}
}

// DateEquals implements DateEquals(a,b,flags...).
var DateEquals = dateCompare("DateEquals", func(a, b time.Time) bool { return a.Equal(b) })

// DateNotEquals implements DateNotEquals(a,b,flags...).
var DateNotEquals = dateCompare("DateNotEquals", func(a, b time.Time) bool { return !a.Equal(b) })

// DateLower implements DateLower(a,b,flags...).
var DateLower = dateCompare("DateLower", func(a, b time.Time) bool { return a.Before(b) })

// DateLowerOrEquals implements DateLowerOrEquals(a,b,flags...).
var DateLowerOrEquals = dateCompare("DateLowerOrEquals", func(a, b time.Time) bool { return !a.After(b) })

// DateGreater implements DateGreater(a,b,flags...).
var DateGreater = dateCompare("DateGreater", func(a, b time.Time) bool { return a.After(b) })

// DateGreaterOrEquals implements DateGreaterOrEquals(a,b,flags...).
var DateGreaterOrEquals = dateCompare("DateGreaterOrEquals", func(a, b time.Time) bool { return !a.Before(b) })

func dateAddDuration(name string, unit time.Duration) ast.Callable {
	return func(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
		if err := exactly(name, 2, args); err != nil {
			return value.Null, err
		}
		t, err := evalDate(ev, args[0], values)
		if err != nil {
			return value.Null, err
		}
		n, err := evalNumber(ev, args[1], values)
		if err != nil {
			return value.Null, err
		}
		return value.Date(t.Add(time.Duration(n) * unit)), nil
	}
}

// DateAddHours implements DateAddHours(x, hours).
var DateAddHours = dateAddDuration("DateAddHours", time.Hour)

// DateAddDays implements DateAddDays(x, days).
var DateAddDays = dateAddDuration("DateAddDays", 24*time.Hour)

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// addMonths preserves day-of-month when the resulting month has enough
// days; otherwise it fails naming the unrepresentable date, per §4.F's
// general date-math contract. Negative deltas borrow from years via
// Euclidean division, so DateAddMonths(x, -1) on a January date lands in
// the prior December.
func addMonths(t time.Time, delta int) (time.Time, error) {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	total := int(m) - 1 + delta
	yearDelta := total / 12
	newMonthIdx := total % 12
	if newMonthIdx < 0 {
		newMonthIdx += 12
		yearDelta--
	}
	newYear := y + yearDelta
	newMonth := time.Month(newMonthIdx + 1)
	if d > daysInMonth(newYear, newMonth) {
		return time.Time{}, fmt.Errorf("Couldn't set %d as month to the date %04d-%02d-%02d %02d:%02d:%02d",
			int(newMonth), newYear, int(newMonth), d, hh, mm, ss)
	}
	return time.Date(newYear, newMonth, d, hh, mm, ss, t.Nanosecond(), time.UTC), nil
}

// addYears preserves month/day when legal (every month/day pair is legal
// except February 29 landing on a non-leap year).
func addYears(t time.Time, delta int) (time.Time, error) {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	newYear := y + delta
	if m == time.February && d == 29 && !isLeapYear(newYear) {
		return time.Time{}, fmt.Errorf("Couldn't add %d years to the date %s", delta, value.Date(t).String())
	}
	return time.Date(newYear, m, d, hh, mm, ss, t.Nanosecond(), time.UTC), nil
}

// DateAddMonths implements DateAddMonths(x, months).
func DateAddMonths(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("DateAddMonths", 2, args); err != nil {
		return value.Null, err
	}
	t, err := evalDate(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	n, err := evalNumber(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	result, err := addMonths(t, int(n))
	if err != nil {
		return value.Null, err
	}
	return value.Date(result), nil
}

// DateAddYears implements DateAddYears(x, years).
func DateAddYears(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := exactly("DateAddYears", 2, args); err != nil {
		return value.Null, err
	}
	t, err := evalDate(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	n, err := evalNumber(ev, args[1], values)
	if err != nil {
		return value.Null, err
	}
	result, err := addYears(t, int(n))
	if err != nil {
		return value.Null, err
	}
	return value.Date(result), nil
}

// LocalDate implements LocalDate(x, tz?): interpret x as UTC, shift by the
// named zone's offset (default "Romance Standard Time"), return the naive
// local result.
func LocalDate(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := between("LocalDate", 1, 2, args); err != nil {
		return value.Null, err
	}
	t, err := evalDate(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	zoneName := "Romance Standard Time"
	if len(args) == 2 {
		zoneName, err = evalString(ev, args[1], values)
		if err != nil {
			return value.Null, err
		}
	}
	loc, err := timezone.Lookup(zoneName)
	if err != nil {
		return value.Null, err
	}
	return value.Date(shiftToZone(t, loc)), nil
}

// DateFormat implements DateFormat(x, fmt?): format via the .NET->strftime
// translator, default format "yyyy-MM-dd HH:mm:ss.fff".
func DateFormat(ev ast.Evaluator, args []ast.Node, values map[string]string) (value.Value, error) {
	if err := between("DateFormat", 1, 2, args); err != nil {
		return value.Null, err
	}
	t, err := evalDate(ev, args[0], values)
	if err != nil {
		return value.Null, err
	}
	format := "yyyy-MM-dd HH:mm:ss.fff"
	if len(args) == 2 {
		format, err = evalString(ev, args[1], values)
		if err != nil {
			return value.Null, err
		}
	}
	return value.Str(dateformat.Format(t, format)), nil
}
