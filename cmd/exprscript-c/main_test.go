package main

// These tests call the //export-annotated functions directly as ordinary
// Go functions (the export comment only affects the generated C shim, not
// Go-level visibility), exercising the same parse/execute/free lifecycle a
// C host would drive through the shared library.

/*
#include <stdlib.h>

typedef struct {
	const char *key;
	const char *value;
} exprscript_kv;
*/
import "C"

import (
	"testing"
	"unsafe"
)

func TestParseExecuteFreeRoundTrip(t *testing.T) {
	expr := C.CString(`Concat("Hello, ", name)`)
	defer C.free(unsafe.Pointer(expr))

	handle := exprscript_parse(expr)
	if handle == 0 {
		t.Fatal("exprscript_parse returned a null handle")
	}
	defer exprscript_free_expression(handle)

	key := C.CString("name")
	defer C.free(unsafe.Pointer(key))
	value := C.CString("world")
	defer C.free(unsafe.Pointer(value))

	kv := C.exprscript_kv{key: key, value: value}
	result := exprscript_execute(handle, &kv, 1)
	defer exprscript_free_cstring(result)

	if got := C.GoString(result); got != "Hello, world" {
		t.Errorf("got %q, want %q", got, "Hello, world")
	}
}

func TestParseInvalidExpressionReturnsNullHandle(t *testing.T) {
	expr := C.CString(`Concat("unterminated`)
	defer C.free(unsafe.Pointer(expr))

	if handle := exprscript_parse(expr); handle != 0 {
		exprscript_free_expression(handle)
		t.Fatal("expected a null handle for an unparseable expression")
	}
}

func TestExecuteWithInvalidHandleReturnsErrorString(t *testing.T) {
	result := exprscript_execute(0, nil, 0)
	defer exprscript_free_cstring(result)

	if got := C.GoString(result); got == "" {
		t.Error("expected a non-empty error message for an invalid handle")
	}
}

func TestFreeExpressionIsIdempotent(t *testing.T) {
	expr := C.CString(`1`)
	defer C.free(unsafe.Pointer(expr))

	handle := exprscript_parse(expr)
	exprscript_free_expression(handle)
	exprscript_free_expression(handle) // must not panic
}
