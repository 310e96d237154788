package exprscript

import (
	"fmt"
	"sync"
	"testing"
)

func TestParseAndExecute(t *testing.T) {
	expr, err := Parse(`Concat("Hello, ", "world")`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, err := expr.Execute(nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := v.String(); got != "Hello, world" {
		t.Errorf("got %q, want %q", got, "Hello, world")
	}
}

func TestExecuteWithIdentifiers(t *testing.T) {
	expr, err := Parse(`Concat(firstName, " ", lastName)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, err := expr.Execute(map[string]string{"firstName": "Ada", "lastName": "Lovelace"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := v.String(); got != "Ada Lovelace" {
		t.Errorf("got %q, want %q", got, "Ada Lovelace")
	}
}

func TestParseErrorSurface(t *testing.T) {
	_, err := Parse(`Concat("unterminated`)
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestUnresolvedFunctionDeferredToExecute(t *testing.T) {
	expr, err := Parse(`NotAFunction(1)`)
	if err != nil {
		t.Fatalf("Parse should not fail on an unresolved name: %v", err)
	}
	if _, err := expr.Execute(nil); err == nil {
		t.Fatal("expected Execute to fail for an unresolved function")
	}
}

// TestReusableExpression mirrors original_source's nested-call test case
// (first(first(first(my,2,3),2,3),2,3)) in spirit: one parsed Expression,
// executed repeatedly against different identifier maps.
func TestReusableExpression(t *testing.T) {
	expr, err := Parse(`Upper(name)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, name := range []string{"ada", "grace", "margaret"} {
		v, err := expr.Execute(map[string]string{"name": name})
		if err != nil {
			t.Fatalf("Execute(%q): %v", name, err)
		}
		want := map[string]string{"ada": "ADA", "grace": "GRACE", "margaret": "MARGARET"}[name]
		if got := v.String(); got != want {
			t.Errorf("Execute(%q) = %q, want %q", name, got, want)
		}
	}
}

// TestConcurrentExecute exercises §5's safe-for-concurrent-Execute
// requirement: one *Expression shared across many goroutines.
func TestConcurrentExecute(t *testing.T) {
	expr, err := Parse(`Sum(a, b, c)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := expr.Execute(map[string]string{"a": "1", "b": "2", "c": "3"})
			if err != nil {
				errs <- err
				return
			}
			if v.String() != "6" {
				errs <- fmt.Errorf("got %q, want %q", v.String(), "6")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent Execute: %v", err)
		}
	}
}

func TestWithRegistrySandbox(t *testing.T) {
	sandbox := NewRegistry().Subset("Concat")

	expr, err := Parse(`Concat("a", "b")`, WithRegistry(sandbox))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v, err := expr.Execute(nil); err != nil || v.String() != "ab" {
		t.Errorf("Concat in sandbox = (%v, %v), want (ab, nil)", v, err)
	}

	blocked, err := Parse(`Upper("a")`, WithRegistry(sandbox))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := blocked.Execute(nil); err == nil {
		t.Error("expected Upper to be unresolved in a Concat-only sandbox")
	}
}
