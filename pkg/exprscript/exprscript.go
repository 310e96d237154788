// Package exprscript is the public, embeddable façade over the expression
// engine: parse an expression once, then execute it against any number of
// identifier maps. It mirrors go-dws's pkg/dwscript relationship to
// internal/interp — the internal packages hold the implementation, this
// package is the stable surface hosts (including cmd/exprscript and
// cmd/exprscript-c) build against.
package exprscript

import (
	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/binder"
	"github.com/cwbudde/exprscript/internal/builtins"
	"github.com/cwbudde/exprscript/internal/eval"
	"github.com/cwbudde/exprscript/internal/parser"
	"github.com/cwbudde/exprscript/internal/value"
)

// Value is the typed result of evaluating an expression. It is a type
// alias, not a wrapper, so callers can use value.Value's Kind/AsX accessors
// without this package re-exporting each one individually.
type Value = value.Value

// Registry is the public, immutable-after-construction wrapper around the
// function table a Parse call binds against. The zero value is not usable;
// obtain one via NewRegistry.
type Registry struct {
	inner *builtins.Registry
}

// NewRegistry builds a Registry containing every built-in function listed
// in spec.md §4.F. Hosts that want a reduced surface (e.g. sandboxing) can
// derive one with Subset and pass it to Parse via WithRegistry; this
// constructor is the default, full-coverage path.
func NewRegistry() *Registry {
	return &Registry{inner: builtins.NewRegistry()}
}

// Lookup satisfies binder.Registry, so a *Registry can be passed directly
// wherever the internal packages expect one.
func (r *Registry) Lookup(name string) (ast.Callable, bool) {
	return r.inner.Lookup(name)
}

// Names returns every registered function name, including aliases — used by
// cmd/exprscript's list-functions subcommand.
func (r *Registry) Names() []string {
	return r.inner.Names()
}

// Arity reports the arity shape name enforces (e.g. "exactly 2"), as
// recorded in the registry's introspection metadata.
func (r *Registry) Arity(name string) (string, bool) {
	return r.inner.Arity(name)
}

// Subset returns a new Registry exposing only the named functions, looked
// up against the full builtin set. Unknown names are silently dropped —
// callers that need to confirm a name exists should Lookup it first. This
// is how a host builds a sandboxed registry (e.g. for untrusted
// expressions) without this package exporting the internal Callable type.
func (r *Registry) Subset(names ...string) *Registry {
	reduced := make(map[string]ast.Callable, len(names))
	for _, n := range names {
		if fn, ok := r.inner.Lookup(n); ok {
			reduced[n] = fn
		}
	}
	return &Registry{inner: builtins.FromMap(reduced)}
}

// Option configures a Parse call. There is currently one knob
// (WithRegistry); more are expected to land here rather than as new Parse
// overloads, matching go-dws's functional-options convention on
// pkg/dwscript.New.
type Option func(*config)

type config struct {
	registry *Registry
}

// WithRegistry overrides the default full registry built by NewRegistry.
// Hosts embedding exprscript in a sandboxed context can supply a Registry
// built from a reduced function set.
func WithRegistry(r *Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// Expression is a parsed and bound expression, ready to Execute against any
// number of identifier maps. It holds no mutable state after construction,
// so one Expression may be shared across goroutines and Execute'd
// concurrently (§5) — each call supplies its own identifier map and the
// shared Evaluator carries no per-call state of its own.
type Expression struct {
	bound ast.Node
}

var evaluator = eval.New()

// Parse parses expr per spec.md §4.B and binds its function calls against a
// registry (the default full registry, or one supplied via WithRegistry).
// Binding never fails outright — an unresolved function name surfaces as an
// error only when Execute actually reaches that call (§4.C) — so the only
// error Parse itself can return is a parse error.
func Parse(expr string, opts ...Option) (*Expression, error) {
	cfg := config{registry: NewRegistry()}
	for _, opt := range opts {
		opt(&cfg)
	}

	node, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}

	return &Expression{bound: binder.Bind(node, cfg.registry)}, nil
}

// Execute evaluates the expression against values, a map of identifier name
// to its string representation (coerced on demand by whichever function
// consumes it). It is safe to call concurrently on the same *Expression.
func (e *Expression) Execute(values map[string]string) (Value, error) {
	return evaluator.Eval(e.bound, values)
}
