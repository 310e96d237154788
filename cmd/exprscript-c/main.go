// Package main is the C ABI entry point for the exprscript engine (spec.md
// §6). It exports exactly four functions so a host process in any language
// with a C FFI can parse an expression once and execute it many times,
// mirroring how cmd/dwscript-wasm/main.go is a thin package main that only
// registers the embeddable engine's API for a foreign host — here the host
// is a C ABI consumer reached via cgo's //export comments instead of
// syscall/js, and the engine underneath is pkg/exprscript rather than
// pkg/wasm.
//
// Build with:
//
//	go build -buildmode=c-shared -o libexprscript.so ./cmd/exprscript-c
//
// Parsed expressions are held on the Go side behind a runtime/cgo.Handle:
// the C caller only ever sees an opaque uintptr_t, never a raw Go pointer,
// so the handle survives being passed back across the ABI boundary without
// violating cgo's pointer-passing rules.
package main

/*
#include <stdlib.h>

typedef struct {
	const char *key;
	const char *value;
} exprscript_kv;
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/cwbudde/exprscript/pkg/exprscript"
)

// exprscript_parse parses and binds expression, returning an opaque handle
// for use with exprscript_execute and exprscript_free_expression. Returns 0
// if expression fails to parse; the caller has no parse-error text in that
// case (the C ABI has no channel for it — see spec.md §6's "richer error
// channels are future work").
//
//export exprscript_parse
func exprscript_parse(expression *C.char) C.uintptr_t {
	if expression == nil {
		return 0
	}
	expr, err := exprscript.Parse(C.GoString(expression))
	if err != nil {
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(expr))
}

// exprscript_execute evaluates the expression behind handle against the
// identifier_values array (identifier_values_len entries of {key, value}
// C-string pairs) and returns the result's string form as a newly
// allocated, null-terminated C string. The caller owns the returned string
// and must release it with exprscript_free_cstring. On error, the returned
// string holds a human-readable message in lieu of a result — callers must
// inspect the text (§6), since the C ABI has no separate error channel. A
// nil or already-freed handle also returns an error string rather than
// crashing the host process.
//
//export exprscript_execute
func exprscript_execute(handle C.uintptr_t, identifierValues *C.exprscript_kv, identifierValuesLen C.size_t) *C.char {
	var expr *exprscript.Expression
	if handle != 0 {
		func() {
			// Handle.Value panics on an invalid or already-deleted handle.
			defer func() { recover() }()
			expr, _ = cgo.Handle(handle).Value().(*exprscript.Expression)
		}()
	}
	if expr == nil {
		return C.CString("invalid expression handle")
	}

	values := make(map[string]string, int(identifierValuesLen))
	if identifierValuesLen > 0 {
		kvs := unsafe.Slice(identifierValues, int(identifierValuesLen))
		for _, kv := range kvs {
			if kv.key == nil || kv.value == nil {
				return C.CString("identifier key/value pair has a null C string")
			}
			values[C.GoString(kv.key)] = C.GoString(kv.value)
		}
	}

	result, err := expr.Execute(values)
	if err != nil {
		return C.CString(err.Error())
	}
	return C.CString(result.String())
}

// exprscript_free_expression releases a handle returned by
// exprscript_parse. Freeing an already-freed or zero handle is a no-op.
//
//export exprscript_free_expression
func exprscript_free_expression(handle C.uintptr_t) {
	if handle == 0 {
		return
	}
	h := cgo.Handle(handle)
	defer func() {
		// A double-free or an already-invalid handle panics inside
		// Handle.Delete; swallow it rather than crashing the host process,
		// since the C ABI has no way to report it back.
		recover()
	}()
	h.Delete()
}

// exprscript_free_cstring releases a string returned by exprscript_execute.
// Freeing a nil pointer is a no-op.
//
//export exprscript_free_cstring
func exprscript_free_cstring(ptr *C.char) {
	if ptr == nil {
		return
	}
	C.free(unsafe.Pointer(ptr))
}

// main is required by -buildmode=c-shared but never invoked directly.
func main() {}
