package parser

import (
	"fmt"
	"strings"

	"github.com/cwbudde/exprscript/internal/lexer"
)

// ParseError carries the failing position and the set of productions the
// parser was willing to accept there, per spec.md §4.B: "Any unconsumed
// trailing input or structural mismatch yields a parse error carrying the
// failing position and expectation set (rendered as a single string)."
//
// The shape is a trimmed descendant of go-dws's
// internal/parser/structured_error.go StructuredParserError: position,
// expected set, and actual token, always surfaced through one Error()
// string — DWScript's richer fields (block context, parse phase,
// suggestions, related positions) have no analog in this much smaller
// grammar and are dropped.
type ParseError struct {
	Pos      lexer.Position
	Expected []string
	Actual   string
}

// Error renders the structured fields as the single string spec.md
// requires. Format: "expected <one-of-expected>, got <actual> at <line>:<col>".
func (e *ParseError) Error() string {
	var b strings.Builder
	switch len(e.Expected) {
	case 0:
		b.WriteString("unexpected input")
	case 1:
		fmt.Fprintf(&b, "expected %s", e.Expected[0])
	default:
		fmt.Fprintf(&b, "expected one of [%s]", strings.Join(e.Expected, ", "))
	}
	if e.Actual != "" {
		fmt.Fprintf(&b, ", got %s", e.Actual)
	}
	fmt.Fprintf(&b, " at %d:%d", e.Pos.Line, e.Pos.Column)
	return b.String()
}

func newParseError(pos lexer.Position, actual string, expected ...string) *ParseError {
	return &ParseError{Pos: pos, Expected: expected, Actual: actual}
}
