package builtins

import "github.com/cwbudde/exprscript/internal/ast"

// entry pairs a callable with the arity shape it enforces internally
// (the Rust source's "exactly N | no more than N | N or more" family, plus
// exprscript's own two-sided "between A and B"), recorded as data per
// SPEC_FULL.md's §3 "Function registry" extension so callers can introspect
// a function's signature without invoking it — cmd/exprscript's
// list-functions subcommand and host bindings that pre-validate arity
// before crossing the C ABI both read this.
type entry struct {
	fn    ast.Callable
	arity string
}

// Registry is the concrete, immutable-after-construction implementation of
// binder.Registry (§3's "function registry"). It is built once by
// NewRegistry and is safe for concurrent lookups thereafter — there is no
// mutation path once construction returns.
type Registry struct {
	fns map[string]entry
}

// Lookup satisfies binder.Registry.
func (r *Registry) Lookup(name string) (ast.Callable, bool) {
	e, ok := r.fns[name]
	return e.fn, ok
}

// Arity returns the registered arity shape for name (e.g. "exactly 2",
// "1 or more", "between 1 and 3"), for introspection by callers that don't
// want to trigger the arity error just to learn the shape.
func (r *Registry) Arity(name string) (string, bool) {
	e, ok := r.fns[name]
	return e.arity, ok && e.arity != ""
}

// Names returns every registered function name, including aliases, in no
// particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fns))
	for n := range r.fns {
		names = append(names, n)
	}
	return names
}

// FromMap builds a Registry directly from a pre-resolved name→Callable map,
// letting a caller that already holds a subset of a full registry's
// entries (see pkg/exprscript.Registry.Subset) wrap it back up as a
// Registry without going through NewRegistry's full wiring. Arity
// introspection is unavailable on a Registry built this way (Arity always
// reports !ok) since the subset no longer has the shape metadata at hand.
func FromMap(fns map[string]ast.Callable) *Registry {
	wrapped := make(map[string]entry, len(fns))
	for name, fn := range fns {
		wrapped[name] = entry{fn: fn}
	}
	return &Registry{fns: wrapped}
}

// NewRegistry builds the full ~70-function registry of spec.md §4.F,
// wiring every alias (IsNull/IsBlank, Concat/Concatenate, Gt/GreaterThan,
// ...) to the single shared implementation its names share, along with the
// arity shape each one enforces.
func NewRegistry() *Registry {
	r := &Registry{fns: make(map[string]entry)}

	register := func(fn ast.Callable, arity string, names ...string) {
		for _, n := range names {
			r.fns[n] = entry{fn: fn, arity: arity}
		}
	}

	// Misc / logical-null
	register(IsNull, "no more than 1", "IsNull", "IsBlank")
	register(AreEquals, "exactly 2", "AreEquals")
	register(In, "2 or more", "In")
	register(InLike, "2 or more", "InLike")
	register(Like, "exactly 2", "IsLike", "Like")
	register(FirstNotNull, "0 or more", "FirstNotNull", "FirstNotEmpty")

	// Strings
	register(Concat, "0 or more", "Concat", "Concatenate")
	register(Exact, "exactly 2", "Exact")
	register(Find, "between 2 and 3", "Find")
	register(Substitute, "exactly 3", "Substitute")
	register(Fixed, "between 1 and 3", "Fixed")
	register(Left, "exactly 2", "Left")
	register(Right, "exactly 2", "Right")
	register(Mid, "exactly 3", "Mid")
	register(Len, "exactly 1", "Len")
	register(Lower, "exactly 1", "Lower")
	register(Upper, "exactly 1", "Upper")
	register(Trim, "exactly 1", "Trim")
	register(Text, "exactly 1", "Text")
	register(FirstWord, "exactly 1", "FirstWord")
	register(FirstSentence, "exactly 1", "FirstSentence")
	register(Capitalize, "exactly 1", "Capitalize")
	register(Split, "exactly 3", "Split")
	register(NumberValue, "between 1 and 2", "NumberValue")
	register(StartsWith, "exactly 2", "StartsWith")
	register(EndsWith, "exactly 2", "EndsWith")
	register(ReplaceEquals, "2 or more", "ReplaceEquals")
	register(ReplaceLike, "2 or more", "ReplaceLike")

	// Logical
	register(And, "1 or more", "And")
	register(Or, "1 or more", "Or")
	register(Not, "exactly 1", "Not")
	register(Xor, "exactly 2", "Xor")
	register(Iif, "exactly 3", "Iif", "If")

	// Math
	register(Abs, "exactly 1", "Abs")
	register(Product, "1 or more", "Product")
	register(Sum, "1 or more", "Sum")
	register(Divide, "exactly 2", "Divide")
	register(Subtract, "exactly 2", "Subtract")
	register(Modulo, "exactly 2", "Mod", "Modulo")
	register(Round, "exactly 2", "Round")
	register(GreaterThan, "exactly 2", "Gt", "GreaterThan")
	register(LowerThan, "exactly 2", "Lt", "LowerThan")
	register(GreaterThanOrEqual, "exactly 2", "Gtoe", "GreaterThanOrEqual")
	register(LowerThanOrEqual, "exactly 2", "Ltoe", "LowerThanOrEqual")

	// Date/Time
	register(Now, "exactly 0", "Now")
	register(Today, "exactly 0", "Today")
	register(Time, "exactly 0", "Time")
	register(NowSpecificTimeZone, "no more than 1", "NowSpecificTimeZone")
	register(Date, "exactly 1", "Date")
	register(Year, "exactly 1", "Year")
	register(Month, "exactly 1", "Month")
	register(Day, "exactly 1", "Day")
	register(DateDiff, "exactly 2", "DateDiff")
	register(DateDiffHours, "exactly 2", "DateDiffHours")
	register(DateDiffDays, "exactly 2", "DateDiffDays")
	register(DateDiffMonths, "exactly 2", "DateDiffMonths")
	register(DateEquals, "between 2 and 8", "DateEquals")
	register(DateNotEquals, "between 2 and 8", "DateNotEquals")
	register(DateLower, "between 2 and 8", "DateLower")
	register(DateLowerOrEquals, "between 2 and 8", "DateLowerOrEquals")
	register(DateGreater, "between 2 and 8", "DateGreater")
	register(DateGreaterOrEquals, "between 2 and 8", "DateGreaterOrEquals")
	register(DateAddHours, "exactly 2", "DateAddHours")
	register(DateAddDays, "exactly 2", "DateAddDays")
	register(DateAddMonths, "exactly 2", "DateAddMonths")
	register(DateAddYears, "exactly 2", "DateAddYears")
	register(LocalDate, "between 1 and 2", "LocalDate")
	register(DateFormat, "between 1 and 2", "DateFormat")

	return r
}
